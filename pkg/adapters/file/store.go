package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/lifeos/pkg/domain"
)

// Store implements ports.DocumentStore using the local filesystem.
// Each document is stored as a JSON file under a per-type subdirectory,
// named by the slug of the document name.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".lifeos/documents".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".lifeos", "documents")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(docType domain.DocType, name string) string {
	return filepath.Join(s.BasePath, string(docType), domain.Slug(name)+".json")
}

// Save persists the document to a JSON file atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it
// to the destination.
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	if doc == nil || doc.Name == "" {
		return fmt.Errorf("document name cannot be empty")
	}

	dir := filepath.Join(s.BasePath, string(doc.Type))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure document directory: %w", err)
	}

	destPath := s.path(doc.Type, doc.Name)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	// Temp file lives in the same directory so the rename stays on one
	// filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-"+domain.Slug(doc.Name)+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}

	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists, so remove it first. The
	// brief window is acceptable for CLI usage compared to a partial write.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing document file for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file to document: %w", err)
	}

	return nil
}

// Load retrieves a document by name, probing every type subdirectory for
// the matching slug.
func (s *Store) Load(ctx context.Context, name string) (*domain.Document, error) {
	if name == "" {
		return nil, fmt.Errorf("document name cannot be empty")
	}

	for _, dt := range domain.DocTypes {
		doc, err := s.read(s.path(dt, name))
		if err == nil {
			return doc, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return nil, domain.ErrDocumentNotFound
}

func (s *Store) read(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document %s: %w", path, err)
	}

	return &doc, nil
}

// Delete removes the document file. Deleting a missing document is not an
// error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("document name cannot be empty")
	}

	for _, dt := range domain.DocTypes {
		err := os.Remove(s.path(dt, name))
		if err == nil {
			return nil
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete document file: %w", err)
		}
	}

	return nil
}

// List returns the names of all stored documents. Files that fail to parse
// are skipped rather than failing the whole listing.
func (s *Store) List(ctx context.Context) ([]string, error) {
	names := []string{}

	for _, dt := range domain.DocTypes {
		dir := filepath.Join(s.BasePath, string(dt))
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to list documents: %w", err)
		}

		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
				continue
			}
			doc, err := s.read(filepath.Join(dir, entry.Name()))
			if err != nil {
				continue
			}
			names = append(names, doc.Name)
		}
	}

	return names, nil
}
