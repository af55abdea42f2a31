package wings

import (
	"context"
	"sync"

	"github.com/aretw0/lifeos/pkg/domain"
)

// Social builds and maintains high-value relationships and network
// effects.
type Social struct {
	mu      sync.Mutex
	reports int
}

// NewSocial creates the social wing.
func NewSocial() *Social { return &Social{} }

func (s *Social) Name() string { return "social" }

func (s *Social) Role() string { return "Chief Relationship Officer" }

// Check assesses relationship health, prioritizes outreach, and finds
// value creation and expansion opportunities.
func (s *Social) Check(ctx context.Context) domain.WingReport {
	s.mu.Lock()
	s.reports++
	s.mu.Unlock()

	sections := map[string]any{
		"relationship_health": map[string]any{
			"strong_relationships":          12,
			"dormant_relationships":         8,
			"at_risk_relationships":         3,
			"relationship_momentum":         "positive",
			"average_interaction_frequency": "monthly",
		},
		"outreach_priorities": []map[string]any{
			{
				"person":            "AI Industry Leader",
				"relationship_type": "mentor",
				"last_contact":      "3 months ago",
				"priority":          "high",
				"outreach_reason":   "Seek guidance on AI career transition",
			},
			{
				"person":            "Former Colleague",
				"relationship_type": "peer",
				"last_contact":      "6 months ago",
				"priority":          "medium",
				"outreach_reason":   "Potential collaboration opportunity",
			},
		},
		"value_opportunities": []map[string]any{
			{
				"opportunity": "Connect two people in network who should know each other",
				"effort":      "low",
				"impact":      "high",
				"action":      "Facilitate introduction between AI expert and entrepreneur",
			},
			{
				"opportunity": "Share valuable industry insights",
				"effort":      "medium",
				"impact":      "medium",
				"action":      "Send weekly AI industry newsletter to network",
			},
		},
		"expansion_targets": []map[string]any{
			{
				"target_type":         "AI Entrepreneurs",
				"quantity":            5,
				"connection_strategy": "Industry events and online communities",
				"value_proposition":   "AI implementation expertise",
			},
			{
				"target_type":         "Content Creators",
				"quantity":            3,
				"connection_strategy": "Collaboration on AI-enhanced content",
				"value_proposition":   "Technical AI knowledge",
			},
		},
	}

	actions := []string{
		"Reach out to 3 dormant high-value relationships",
		"Attend 1 AI industry networking event",
		"Create valuable content to share with network",
	}

	return newReport(s.Name(), sections, actions)
}

func (s *Social) Status() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]any{
		"network_health":       "good",
		"relationship_momentum": "positive",
		"social_capital_trend": "growing",
		"outreach_consistency": "needs_improvement",
		"value_creation":       "active",
		"reports_generated":    s.reports,
	}
}
