// Package docmanager coordinates access to living documents. All reads
// and writes go through a ports.DocumentStore; mutations on the same
// document serialize on a per-name lock.
package docmanager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/aretw0/lifeos/internal/logging"
	"github.com/aretw0/lifeos/pkg/domain"
	"github.com/aretw0/lifeos/pkg/ports"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates document access, ensuring safe concurrent
// load-modify-save cycles. It uses reference counting to garbage collect
// unused locks.
type Manager struct {
	store ports.DocumentStore

	mu    sync.Mutex
	locks map[string]*lockEntry

	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a new document manager backed by the given store.
func NewManager(store ports.DocumentStore, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		locks:  make(map[string]*lockEntry),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller must Lock the entry.mu and call release(name) after unlocking.
func (m *Manager) acquire(name string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[name]
	if !exists {
		entry = &lockEntry{}
		m.locks[name] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry at zero.
func (m *Manager) release(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[name]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, name)
	}
}

// withLock executes fn while holding the lock for the document name.
func (m *Manager) withLock(ctx context.Context, name string, fn func(context.Context) error) error {
	entry := m.acquire(name)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(name)
	}()

	return fn(ctx)
}

// Create persists a new document at version 1. Creating over an existing
// name replaces it.
func (m *Manager) Create(ctx context.Context, name string, docType domain.DocType, content string) (*domain.Document, error) {
	if name == "" {
		return nil, fmt.Errorf("document name cannot be empty")
	}

	doc := domain.NewDocument(name, docType, content)
	err := m.withLock(ctx, name, func(ctx context.Context) error {
		return m.store.Save(ctx, doc)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	m.logger.Info("document created", "name", name, "type", docType)
	return doc, nil
}

// Get retrieves a document by name.
func (m *Manager) Get(ctx context.Context, name string) (*domain.Document, error) {
	return m.store.Load(ctx, name)
}

// Update replaces a document's content, snapshotting the previous version.
func (m *Manager) Update(ctx context.Context, name, content, reason string) (*domain.Document, error) {
	return m.mutate(ctx, name, func(doc *domain.Document) {
		doc.SetContent(content, reason)
	})
}

// AddInsight appends a dated insight block to a document.
func (m *Manager) AddInsight(ctx context.Context, name, insight, source string) (*domain.Document, error) {
	return m.mutate(ctx, name, func(doc *domain.Document) {
		doc.AppendInsight(insight, source)
	})
}

// mutate runs a load-modify-save cycle under the document's lock.
func (m *Manager) mutate(ctx context.Context, name string, fn func(*domain.Document)) (*domain.Document, error) {
	var doc *domain.Document
	err := m.withLock(ctx, name, func(ctx context.Context) error {
		var err error
		doc, err = m.store.Load(ctx, name)
		if err != nil {
			return err
		}
		fn(doc)
		return m.store.Save(ctx, doc)
	})
	if err != nil {
		return nil, err
	}

	m.logger.Debug("document evolved", "name", name, "version", doc.Version)
	return doc, nil
}

// Search returns documents whose name or content contains the query,
// case-insensitively. An empty docType matches all types. Results are
// ordered by name.
func (m *Manager) Search(ctx context.Context, query string, docType domain.DocType) ([]*domain.Document, error) {
	docs, err := m.all(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var matches []*domain.Document
	for _, doc := range docs {
		if docType != "" && doc.Type != docType {
			continue
		}
		if q == "" ||
			strings.Contains(strings.ToLower(doc.Name), q) ||
			strings.Contains(strings.ToLower(doc.Content), q) {
			matches = append(matches, doc)
		}
	}
	return matches, nil
}

// ByType returns all documents of one type, ordered by name.
func (m *Manager) ByType(ctx context.Context, docType domain.DocType) ([]*domain.Document, error) {
	return m.Search(ctx, "", docType)
}

// List returns the names of all documents, sorted.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	names, err := m.store.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a document.
func (m *Manager) Delete(ctx context.Context, name string) error {
	return m.withLock(ctx, name, func(ctx context.Context) error {
		return m.store.Delete(ctx, name)
	})
}

// Store returns the underlying document store.
func (m *Manager) Store() ports.DocumentStore {
	return m.store
}

func (m *Manager) all(ctx context.Context) ([]*domain.Document, error) {
	names, err := m.List(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]*domain.Document, 0, len(names))
	for _, name := range names {
		doc, err := m.store.Load(ctx, name)
		if err != nil {
			// Documents can vanish between List and Load.
			if errors.Is(err, domain.ErrDocumentNotFound) {
				continue
			}
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
