package domain

import (
	"fmt"
	"strings"
	"time"
)

// DocType classifies a living document. An alias keeps document types
// interchangeable with plain strings at API boundaries.
type DocType = string

// DocType constants classify living documents. The type also determines the
// subdirectory a document is persisted under.
const (
	DocTypeProtocol  = "protocol"
	DocTypeHeuristic = "heuristic"
	DocTypePlaybook  = "playbook"
	DocTypeWorldview = "worldview"
	DocTypeTargets   = "targets"
)

// DocTypes lists every known document type in persistence order.
var DocTypes = []string{
	DocTypeProtocol,
	DocTypeHeuristic,
	DocTypePlaybook,
	DocTypeWorldview,
	DocTypeTargets,
}

// Revision is a snapshot of a document before an update was applied.
type Revision struct {
	Version   int       `json:"version"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

// CrossRef links a document to a related document.
type CrossRef struct {
	Document     string    `json:"document"`
	Relationship string    `json:"relationship"`
	AddedAt      time.Time `json:"added_at"`
}

// Document is a living document: a named text blob with an incrementing
// version counter and an append-only revision history.
type Document struct {
	Name      string            `json:"name"`
	Type      string            `json:"doc_type"`
	Content   string            `json:"content"`
	Version   int               `json:"version"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"last_updated"`
	Tags      []string          `json:"tags,omitempty"`
	History   []Revision        `json:"update_history,omitempty"`
	CrossRefs []CrossRef        `json:"cross_references,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	UsageCount int              `json:"usage_count"`
}

// NewDocument creates a document at version 1.
func NewDocument(name, docType, content string) *Document {
	now := time.Now()
	return &Document{
		Name:      name,
		Type:      docType,
		Content:   content,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetContent replaces the document content, snapshotting the previous
// content into History and bumping the version. The version never
// decrements; history is append-only.
func (d *Document) SetContent(content, reason string) {
	d.History = append(d.History, Revision{
		Version:   d.Version,
		Content:   d.Content,
		Timestamp: d.UpdatedAt,
		Reason:    reason,
	})
	d.Content = content
	d.Version++
	d.UpdatedAt = time.Now()
}

// AppendInsight appends a dated insight block to the content. It goes
// through SetContent, so it costs exactly one version bump.
func (d *Document) AppendInsight(insight, source string) {
	var b strings.Builder
	fmt.Fprintf(&b, "\n\n## Insight (%s)\n", time.Now().Format("2006-01-02"))
	if source != "" {
		fmt.Fprintf(&b, "**Source:** %s\n", source)
	}
	b.WriteString(insight)
	b.WriteString("\n")

	reason := "Added insight"
	if source != "" {
		reason = "Added insight from " + source
	}
	d.SetContent(d.Content+b.String(), reason)
}

// AddCrossRef records a relationship to another document.
func (d *Document) AddCrossRef(docName, relationship string) {
	d.CrossRefs = append(d.CrossRefs, CrossRef{
		Document:     docName,
		Relationship: relationship,
		AddedAt:      time.Now(),
	})
}

// Related returns the names of cross-referenced documents.
func (d *Document) Related() []string {
	names := make([]string, 0, len(d.CrossRefs))
	for _, ref := range d.CrossRefs {
		names = append(names, ref.Document)
	}
	return names
}

// MarkUsage bumps the usage counter. The context, when given, is kept in
// metadata for effectiveness tracking.
func (d *Document) MarkUsage(context string) {
	d.UsageCount++
	if d.Metadata == nil {
		d.Metadata = make(map[string]string)
	}
	d.Metadata["last_used"] = time.Now().Format(time.RFC3339)
	if context != "" {
		d.Metadata["last_context"] = context
	}
}

// Slug returns the filesystem-safe identifier used for persistence.
func Slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}
