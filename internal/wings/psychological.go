package wings

import (
	"context"
	"sync"

	"github.com/aretw0/lifeos/pkg/domain"
)

// Psychological monitors cognitive performance and mental resilience.
type Psychological struct {
	mu      sync.Mutex
	reports int
}

// NewPsychological creates the psychological wing.
func NewPsychological() *Psychological { return &Psychological{} }

func (p *Psychological) Name() string { return "psychological" }

func (p *Psychological) Role() string { return "Chief Psychology Officer" }

// Check performs a wellness check over cognitive performance, stress,
// decision capacity, and mental clarity.
func (p *Psychological) Check(ctx context.Context) domain.WingReport {
	p.mu.Lock()
	p.reports++
	p.mu.Unlock()

	sections := map[string]any{
		"cognitive_performance": map[string]any{
			"focus_score":       85,
			"processing_speed":  "high",
			"working_memory":    "optimal",
			"creative_thinking": "active",
		},
		"stress_levels": map[string]any{
			"overall_stress":    "low_moderate",
			"stress_sources":    []string{"time_pressure", "uncertainty"},
			"coping_mechanisms": []string{"strategic_thinking", "systematic_approach"},
		},
		"decision_capacity": map[string]any{
			"decision_fatigue": "low",
			"cognitive_load":   "manageable",
			"bias_awareness":   "high",
			"decision_quality": "strong",
		},
		"mental_clarity": map[string]any{
			"clarity_level":      "high",
			"focus_duration":     "extended",
			"mental_fog":         "minimal",
			"strategic_thinking": "sharp",
		},
	}

	actions := []string{
		"Maintain regular cognitive breaks",
		"Practice strategic reflection sessions",
		"Monitor decision fatigue indicators",
		"Preserve focus time blocks",
	}

	return newReport(p.Name(), sections, actions)
}

func (p *Psychological) Status() map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return map[string]any{
		"wellness_reports":      p.reports,
		"cognitive_performance": "optimal",
		"stress_management":     "effective",
		"mental_clarity":        "high",
	}
}
