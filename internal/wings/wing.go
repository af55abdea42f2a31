// Package wings implements the specialized support branches: financial,
// social, physiological, psychological, and political. Each wing
// monitors its area and produces a report with recommended actions.
package wings

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/lifeos/internal/logging"
	"github.com/aretw0/lifeos/pkg/domain"
)

// Wing is one specialized support branch.
type Wing interface {
	// Name identifies the wing.
	Name() string
	// Role names the office the wing holds.
	Role() string
	// Check runs the wing's monitoring cycle and returns its report.
	Check(ctx context.Context) domain.WingReport
	// Status summarizes the wing's current state.
	Status() map[string]any
}

// Registry holds the active wings and runs them together.
type Registry struct {
	mu     sync.Mutex
	wings  map[string]Wing
	order  []string
	logger *slog.Logger
}

// NewRegistry creates a registry with the given wings registered in
// order.
func NewRegistry(logger *slog.Logger, wings ...Wing) *Registry {
	if logger == nil {
		logger = logging.NewNop()
	}
	r := &Registry{wings: make(map[string]Wing), logger: logger}
	for _, w := range wings {
		r.Register(w)
	}
	return r
}

// NewDefaultRegistry creates a registry carrying all five wings.
func NewDefaultRegistry(logger *slog.Logger) *Registry {
	return NewRegistry(logger,
		NewFinancial(),
		NewSocial(),
		NewPhysiological(),
		NewPsychological(),
		NewPolitical(),
	)
}

// Register adds a wing, replacing any wing with the same name.
func (r *Registry) Register(w Wing) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.wings[w.Name()]; !exists {
		r.order = append(r.order, w.Name())
	}
	r.wings[w.Name()] = w
}

// Get returns the named wing, or nil when it is not registered.
func (r *Registry) Get(name string) Wing {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wings[name]
}

// Names returns the registered wing names in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// CheckAll runs every wing's check and returns the reports keyed by
// wing name.
func (r *Registry) CheckAll(ctx context.Context) map[string]domain.WingReport {
	r.mu.Lock()
	wings := make([]Wing, 0, len(r.order))
	for _, name := range r.order {
		wings = append(wings, r.wings[name])
	}
	r.mu.Unlock()

	reports := make(map[string]domain.WingReport, len(wings))
	for _, w := range wings {
		r.logger.Debug("running wing check", "wing", w.Name())
		reports[w.Name()] = w.Check(ctx)
	}
	r.logger.Info("wing checks complete", "wings", len(reports))
	return reports
}

// StatusAll collects every wing's status keyed by wing name.
func (r *Registry) StatusAll() map[string]map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()

	statuses := make(map[string]map[string]any, len(r.wings))
	for name, w := range r.wings {
		statuses[name] = w.Status()
	}
	return statuses
}

func newReport(wing string, sections map[string]any, actions []string) domain.WingReport {
	return domain.WingReport{
		Wing:      wing,
		Timestamp: time.Now(),
		Sections:  sections,
		Actions:   actions,
	}
}
