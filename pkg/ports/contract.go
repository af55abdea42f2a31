package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/lifeos/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunDocumentStoreContract runs a suite of tests to verify that a
// DocumentStore implementation adheres to the defined interface contract.
func RunDocumentStoreContract(t *testing.T, store DocumentStore) {
	ctx := context.Background()
	name := "Contract Test Doc " + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		doc := domain.NewDocument(name, domain.DocTypeHeuristic, "# Heuristics\n\nInitial content.")
		doc.SetContent("# Heuristics\n\nRevised content.", "contract revision")
		doc.AddCrossRef("Worldview Framework", "informs")

		err := store.Save(ctx, doc)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, doc.Name, loaded.Name)
		assert.Equal(t, doc.Type, loaded.Type)
		assert.Equal(t, doc.Content, loaded.Content)
		assert.Equal(t, 2, loaded.Version)
		require.Len(t, loaded.History, 1)
		assert.Equal(t, "contract revision", loaded.History[0].Reason)
		assert.Contains(t, loaded.Related(), "Worldview Framework")
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		doc := domain.NewDocument(name, domain.DocTypeHeuristic, "first")
		require.NoError(t, store.Save(ctx, doc))

		doc.SetContent("second", "overwrite check")
		require.NoError(t, store.Save(ctx, doc))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "second", loaded.Content)
		assert.Equal(t, 2, loaded.Version)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.NewDocument(name, domain.DocTypeHeuristic, "body")))

		err := store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound, "Load after Delete should return ErrDocumentNotFound")
	})

	t.Run("Delete Non-Existent", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "non-existent-"+name))
	})

	t.Run("List", func(t *testing.T) {
		name1 := name + " One"
		name2 := name + " Two"
		_ = store.Save(ctx, domain.NewDocument(name1, domain.DocTypePlaybook, "a"))
		_ = store.Save(ctx, domain.NewDocument(name2, domain.DocTypeTargets, "b"))

		defer func() {
			_ = store.Delete(ctx, name1)
			_ = store.Delete(ctx, name2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, name1)
		assert.Contains(t, names, name2)
	})
}
