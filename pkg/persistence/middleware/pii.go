package middleware

import (
	"context"
	"regexp"

	"github.com/aretw0/lifeos/pkg/domain"
	"github.com/aretw0/lifeos/pkg/ports"
)

type piiMiddleware struct {
	next     ports.DocumentStore
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks content matching the
// patterns before documents reach the store. Metadata values under
// matching keys are masked as well.
func NewPIIMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.DocumentStore) ports.DocumentStore {
		return &piiMiddleware{next: next, patterns: patterns}
	}
}

func (m *piiMiddleware) Save(ctx context.Context, doc *domain.Document) error {
	// Clone so the in-memory document used by callers keeps its
	// original content.
	cloned := *doc
	cloned.Content = maskText(doc.Content, m.patterns)
	cloned.Metadata = maskMetadata(doc.Metadata, m.patterns)

	if len(doc.History) > 0 {
		cloned.History = make([]domain.Revision, len(doc.History))
		copy(cloned.History, doc.History)
		for i := range cloned.History {
			cloned.History[i].Content = maskText(cloned.History[i].Content, m.patterns)
		}
	}

	return m.next.Save(ctx, &cloned)
}

func (m *piiMiddleware) Load(ctx context.Context, name string) (*domain.Document, error) {
	return m.next.Load(ctx, name)
}

func (m *piiMiddleware) Delete(ctx context.Context, name string) error {
	return m.next.Delete(ctx, name)
}

func (m *piiMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// Helpers

func maskText(text string, patterns []*regexp.Regexp) string {
	for _, p := range patterns {
		text = p.ReplaceAllString(text, "***")
	}
	return text
}

func maskMetadata(metadata map[string]string, patterns []*regexp.Regexp) map[string]string {
	if metadata == nil {
		return nil
	}
	out := make(map[string]string, len(metadata))
	for k, v := range metadata {
		out[k] = v
		for _, p := range patterns {
			if p.MatchString(k) {
				out[k] = "***"
				break
			}
		}
	}
	return out
}
