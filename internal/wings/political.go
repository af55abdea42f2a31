package wings

import (
	"context"
	"sync"

	"github.com/aretw0/lifeos/pkg/domain"
)

// Political manages influence, reputation, and strategic relationships
// with power structures.
type Political struct {
	mu            sync.Mutex
	relationships int
	networks      int
	campaigns     int
	reputation    int
	reports       int
}

// NewPolitical creates the political wing.
func NewPolitical() *Political { return &Political{} }

func (p *Political) Name() string { return "political" }

func (p *Political) Role() string { return "Political Capital Manager" }

// Check assesses the political landscape and the capital building
// activities.
func (p *Political) Check(ctx context.Context) domain.WingReport {
	p.mu.Lock()
	p.reports++
	landscape := map[string]any{
		"influence_level":       "building",
		"key_relationships":     p.relationships,
		"reputation_score":      p.reputation,
		"strategic_positioning": "neutral_positive",
	}
	p.mu.Unlock()

	sections := map[string]any{
		"landscape": landscape,
		"capital_building": map[string]any{
			"relationship_building": "active",
			"reputation_management": "ongoing",
			"influence_development": "strategic",
		},
	}

	return newReport(p.Name(), sections, nil)
}

func (p *Political) Status() map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return map[string]any{
		"relationships":      p.relationships,
		"influence_networks": p.networks,
		"reputation_score":   p.reputation,
		"active_campaigns":   p.campaigns,
	}
}
