package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/lifeos/pkg/adapters/file"
	"github.com/aretw0/lifeos/pkg/domain"
	"github.com/aretw0/lifeos/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunDocumentStoreContract(t, store)
}

func TestFileStore_DefaultPath(t *testing.T) {
	store := file.New("")
	assert.Equal(t, filepath.Join(".lifeos", "documents"), store.BasePath)
}

func TestFileStore_LayoutByType(t *testing.T) {
	base := t.TempDir()
	store := file.New(base)
	ctx := context.Background()

	doc := domain.NewDocument("Decision Heuristics", domain.DocTypeHeuristic, "content")
	require.NoError(t, store.Save(ctx, doc))

	path := filepath.Join(base, "heuristic", "decision_heuristics.json")
	_, err := os.Stat(path)
	assert.NoError(t, err, "document should live under its type directory")
}

func TestFileStore_ListSkipsCorruptFiles(t *testing.T) {
	base := t.TempDir()
	store := file.New(base)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewDocument("Good Doc", domain.DocTypePlaybook, "ok")))

	dir := filepath.Join(base, "playbook")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Good Doc"}, names)
}
