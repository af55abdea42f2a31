package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/lifeos/pkg/adapters/memory"
	"github.com/aretw0/lifeos/pkg/domain"
	"github.com/aretw0/lifeos/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunDocumentStoreContract(t, memory.NewStore())
}

func TestMemoryStore_Isolation(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	doc := domain.NewDocument("Worldview", domain.DocTypeWorldview, "original")
	require.NoError(t, store.Save(ctx, doc))

	// Mutating the caller's copy must not leak into the store.
	doc.SetContent("mutated", "outside the store")

	loaded, err := store.Load(ctx, "Worldview")
	require.NoError(t, err)
	assert.Equal(t, "original", loaded.Content)
	assert.Equal(t, 1, loaded.Version)

	// Same for the copy handed out by Load.
	loaded.SetContent("also mutated", "outside the store")

	again, err := store.Load(ctx, "Worldview")
	require.NoError(t, err)
	assert.Equal(t, "original", again.Content)
}
