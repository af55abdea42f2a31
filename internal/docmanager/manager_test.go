package docmanager_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lifeos/internal/docmanager"
	"github.com/aretw0/lifeos/pkg/adapters/memory"
	"github.com/aretw0/lifeos/pkg/domain"
	"github.com/aretw0/lifeos/pkg/ports"
)

func newManager() *docmanager.Manager {
	return docmanager.NewManager(memory.NewStore())
}

func TestManager_CreateAndGet(t *testing.T) {
	mgr := newManager()
	ctx := context.Background()

	doc, err := mgr.Create(ctx, "Worldview Framework", domain.DocTypeWorldview, "# Worldview")
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Version)

	got, err := mgr.Get(ctx, "Worldview Framework")
	require.NoError(t, err)
	assert.Equal(t, "# Worldview", got.Content)
}

func TestManager_GetMissing(t *testing.T) {
	mgr := newManager()

	_, err := mgr.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestManager_UpdateBumpsVersion(t *testing.T) {
	mgr := newManager()
	ctx := context.Background()

	_, err := mgr.Create(ctx, "Playbook", domain.DocTypePlaybook, "v1")
	require.NoError(t, err)

	doc, err := mgr.Update(ctx, "Playbook", "v2", "refinement")
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Version)

	got, err := mgr.Get(ctx, "Playbook")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Content)
	require.Len(t, got.History, 1)
	assert.Equal(t, "v1", got.History[0].Content)
}

func TestManager_AddInsight(t *testing.T) {
	mgr := newManager()
	ctx := context.Background()

	_, err := mgr.Create(ctx, "Heuristics", domain.DocTypeHeuristic, "# Base")
	require.NoError(t, err)

	doc, err := mgr.AddInsight(ctx, "Heuristics", "Avoid negative convexity", "daily briefing")
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Version)
	assert.Contains(t, doc.Content, "Avoid negative convexity")
}

func TestManager_UpdateMissingDocument(t *testing.T) {
	mgr := newManager()

	_, err := mgr.Update(context.Background(), "ghost", "content", "reason")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestManager_Search(t *testing.T) {
	mgr := newManager()
	ctx := context.Background()

	_, err := mgr.Create(ctx, "Negotiation Playbook", domain.DocTypePlaybook, "BATNA and anchoring tactics")
	require.NoError(t, err)
	_, err = mgr.Create(ctx, "Worldview Framework", domain.DocTypeWorldview, "antifragility, optionality")
	require.NoError(t, err)

	t.Run("by name", func(t *testing.T) {
		docs, err := mgr.Search(ctx, "negotiation", "")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Negotiation Playbook", docs[0].Name)
	})

	t.Run("by content", func(t *testing.T) {
		docs, err := mgr.Search(ctx, "ANTIFRAGILITY", "")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "Worldview Framework", docs[0].Name)
	})

	t.Run("type filter", func(t *testing.T) {
		docs, err := mgr.Search(ctx, "a", domain.DocTypePlaybook)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, domain.DocTypePlaybook, docs[0].Type)
	})

	t.Run("no match", func(t *testing.T) {
		docs, err := mgr.Search(ctx, "zzz", "")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestManager_ByTypeAndList(t *testing.T) {
	mgr := newManager()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := mgr.Create(ctx, fmt.Sprintf("Target %d", i), domain.DocTypeTargets, "t")
		require.NoError(t, err)
	}
	_, err := mgr.Create(ctx, "A Playbook", domain.DocTypePlaybook, "p")
	require.NoError(t, err)

	targets, err := mgr.ByType(ctx, domain.DocTypeTargets)
	require.NoError(t, err)
	assert.Len(t, targets, 3)

	names, err := mgr.List(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 4)
	assert.Equal(t, "A Playbook", names[0], "List should be sorted")
}

func TestManager_Delete(t *testing.T) {
	mgr := newManager()
	ctx := context.Background()

	_, err := mgr.Create(ctx, "Ephemeral", domain.DocTypeTargets, "t")
	require.NoError(t, err)

	require.NoError(t, mgr.Delete(ctx, "Ephemeral"))

	_, err = mgr.Get(ctx, "Ephemeral")
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

// vanishingStore lists one name whose Load reports a wrapped not-found,
// like a backend where the document disappeared between List and Load.
type vanishingStore struct {
	ports.DocumentStore
	gone string
}

func (v vanishingStore) List(ctx context.Context) ([]string, error) {
	names, err := v.DocumentStore.List(ctx)
	if err != nil {
		return nil, err
	}
	return append(names, v.gone), nil
}

func (v vanishingStore) Load(ctx context.Context, name string) (*domain.Document, error) {
	if name == v.gone {
		return nil, fmt.Errorf("load %q: %w", name, domain.ErrDocumentNotFound)
	}
	return v.DocumentStore.Load(ctx, name)
}

func TestManager_SearchSkipsVanishedDocuments(t *testing.T) {
	store := vanishingStore{DocumentStore: memory.NewStore(), gone: "Vanished"}
	mgr := docmanager.NewManager(store)
	ctx := context.Background()

	_, err := mgr.Create(ctx, "Surviving Playbook", domain.DocTypePlaybook, "p")
	require.NoError(t, err)

	docs, err := mgr.Search(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Surviving Playbook", docs[0].Name)
}

func TestManager_ConcurrentInsights(t *testing.T) {
	mgr := newManager()
	ctx := context.Background()

	_, err := mgr.Create(ctx, "Shared", domain.DocTypeHeuristic, "base")
	require.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(n int) {
			defer wg.Done()
			_, err := mgr.AddInsight(ctx, "Shared", fmt.Sprintf("insight %d", n), "")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	doc, err := mgr.Get(ctx, "Shared")
	require.NoError(t, err)
	assert.Equal(t, 1+workers, doc.Version, "every insight should land exactly once")
	assert.Len(t, doc.History, workers)
}
