// Package decision implements the weighted go/no-go checker used to
// approve or reject tasks before execution.
package decision

import (
	"log/slog"

	"github.com/aretw0/lifeos/internal/logging"
	"github.com/aretw0/lifeos/internal/metrics"
	"github.com/aretw0/lifeos/pkg/domain"
)

// Criterion holds the weight and the minimum acceptable score for one
// evaluation dimension.
type Criterion struct {
	Weight    float64
	Threshold float64
}

// Checker scores tasks against weighted criteria and produces go/no-go
// verdicts. Scores run from 1.0 to 5.0.
type Checker struct {
	criteria map[string]Criterion
	logger   *slog.Logger
}

// Option configures the Checker.
type Option func(*Checker)

// WithLogger configures a logger for decision transparency output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// NewChecker creates a checker with the default criteria: impact weighs
// most, timing least, and everything needs at least a 3.0.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		criteria: map[string]Criterion{
			"impact":      {Weight: 0.30, Threshold: 3.0},
			"feasibility": {Weight: 0.25, Threshold: 3.0},
			"alignment":   {Weight: 0.20, Threshold: 3.0},
			"resources":   {Weight: 0.15, Threshold: 3.0},
			"timing":      {Weight: 0.10, Threshold: 3.0},
		},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UpdateCriteria replaces or adds criteria definitions.
func (c *Checker) UpdateCriteria(criteria map[string]Criterion) {
	for name, crit := range criteria {
		c.criteria[name] = crit
	}
}

// Evaluate scores a task and returns the full verdict. An empty spec is
// always a no-go.
func (c *Checker) Evaluate(spec domain.TaskSpec) domain.Verdict {
	name := spec.Name
	if name == "" {
		name = "Unknown Task"
	}

	if spec.IsZero() {
		verdict := domain.Verdict{Task: name, Go: false, Reason: "empty task configuration"}
		c.record(verdict)
		return verdict
	}

	scores := c.score(spec)
	total := c.weighted(scores)

	verdict := domain.Verdict{
		Task:   name,
		Score:  total,
		Scores: scores,
	}
	verdict.Go, verdict.Reason = c.decide(total, scores)

	c.record(verdict)
	return verdict
}

// score derives the per-criterion scores from the task configuration.
func (c *Checker) score(spec domain.TaskSpec) domain.Scorecard {
	var s domain.Scorecard

	// Impact: how much value does this create?
	switch spec.Priority {
	case "low":
		s.Impact = 2.0
	case "", "medium":
		s.Impact = 3.5
	case "high":
		s.Impact = 5.0
	default:
		s.Impact = 3.0
	}

	// Feasibility: how achievable is this at its cadence?
	switch spec.Frequency {
	case "continuous":
		s.Feasibility = 3.0
	case "", "daily":
		s.Feasibility = 4.0
	case "weekly":
		s.Feasibility = 4.5
	case "monthly":
		s.Feasibility = 5.0
	default:
		s.Feasibility = 3.5
	}

	// Alignment: defined success criteria signal alignment with goals.
	if len(spec.SuccessCriteria) > 0 {
		s.Alignment = 4.0
	} else {
		s.Alignment = 2.0
	}

	// Resources: do we have what we need?
	switch {
	case len(spec.Inputs) > 0 && len(spec.Outputs) > 0:
		s.Resources = 4.0
	case len(spec.Inputs) > 0 || len(spec.Outputs) > 0:
		s.Resources = 3.0
	default:
		s.Resources = 2.0
	}

	// Timing: an assigned agent means the task can start now.
	if spec.AssignedAgent != "" {
		s.Timing = 4.0
	} else {
		s.Timing = 3.0
	}

	return s
}

func (c *Checker) weighted(s domain.Scorecard) float64 {
	byName := map[string]float64{
		"impact":      s.Impact,
		"feasibility": s.Feasibility,
		"alignment":   s.Alignment,
		"resources":   s.Resources,
		"timing":      s.Timing,
	}

	var sum, totalWeight float64
	for name, score := range byName {
		crit, ok := c.criteria[name]
		if !ok {
			continue
		}
		sum += score * crit.Weight
		totalWeight += crit.Weight
	}

	if totalWeight == 0 {
		return 0
	}
	return sum / totalWeight
}

// decide applies the overall threshold plus the hard floors on
// feasibility and resources.
func (c *Checker) decide(total float64, s domain.Scorecard) (bool, string) {
	if total < 3.0 {
		return false, "weighted score below 3.0"
	}
	if crit, ok := c.criteria["feasibility"]; ok && s.Feasibility < crit.Threshold {
		return false, "feasibility below threshold"
	}
	if crit, ok := c.criteria["resources"]; ok && s.Resources < crit.Threshold {
		return false, "resources below threshold"
	}
	return true, ""
}

func (c *Checker) record(v domain.Verdict) {
	decision := "no_go"
	if v.Go {
		decision = "go"
	}
	metrics.Verdicts.WithLabelValues(decision).Inc()

	c.logger.Info("go/no-go decision",
		"task", v.Task,
		"decision", decision,
		"score", v.Score,
		"impact", v.Scores.Impact,
		"feasibility", v.Scores.Feasibility,
		"alignment", v.Scores.Alignment,
		"resources", v.Scores.Resources,
		"timing", v.Scores.Timing,
	)
}

// Summary evaluates a batch of tasks and aggregates the verdicts.
func (c *Checker) Summary(specs []domain.TaskSpec) domain.DecisionSummary {
	summary := domain.DecisionSummary{
		TotalTasks: len(specs),
		Decisions:  make([]domain.Verdict, 0, len(specs)),
	}

	var totalScore float64
	for _, spec := range specs {
		verdict := c.Evaluate(spec)
		summary.Decisions = append(summary.Decisions, verdict)
		if verdict.Go {
			summary.GoDecisions++
		} else {
			summary.NoGoDecisions++
		}
		totalScore += verdict.Score
	}

	if summary.TotalTasks > 0 {
		summary.AverageScore = totalScore / float64(summary.TotalTasks)
	}
	return summary
}
