package ports

import (
	"context"

	"github.com/aretw0/lifeos/pkg/domain"
)

// DocumentStore defines the interface for persisting living documents.
// Documents are addressed by name; implementations decide how names map to
// keys or paths.
type DocumentStore interface {
	// Save persists a document under its name, overwriting any previous
	// version.
	Save(ctx context.Context, doc *domain.Document) error

	// Load retrieves a document by name.
	// Returns domain.ErrDocumentNotFound if the document does not exist.
	Load(ctx context.Context, name string) (*domain.Document, error)

	// Delete removes a document by name. Deleting a missing document is
	// not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored documents.
	List(ctx context.Context) ([]string, error)
}
