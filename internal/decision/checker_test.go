package decision_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lifeos/internal/decision"
	"github.com/aretw0/lifeos/pkg/domain"
)

func fullSpec() domain.TaskSpec {
	return domain.TaskSpec{
		Name:            "frontier_scan",
		Priority:        "high",
		Frequency:       "daily",
		SuccessCriteria: map[string]any{"briefing": "produced"},
		Inputs:          []string{"feeds"},
		Outputs:         []string{"briefing"},
		AssignedAgent:   "market_scanner",
	}
}

func TestEvaluate_EmptySpecIsNoGo(t *testing.T) {
	checker := decision.NewChecker()

	verdict := checker.Evaluate(domain.TaskSpec{})

	assert.False(t, verdict.Go)
	assert.Equal(t, "Unknown Task", verdict.Task)
	assert.Equal(t, "empty task configuration", verdict.Reason)
}

func TestEvaluate_FullySpecifiedTaskIsGo(t *testing.T) {
	checker := decision.NewChecker()

	verdict := checker.Evaluate(fullSpec())

	require.True(t, verdict.Go)
	assert.Equal(t, 5.0, verdict.Scores.Impact)
	assert.Equal(t, 4.0, verdict.Scores.Feasibility)
	assert.Equal(t, 4.0, verdict.Scores.Alignment)
	assert.Equal(t, 4.0, verdict.Scores.Resources)
	assert.Equal(t, 4.0, verdict.Scores.Timing)
	// 5*.3 + 4*.25 + 4*.2 + 4*.15 + 4*.1
	assert.InDelta(t, 4.3, verdict.Score, 0.0001)
}

func TestEvaluate_ScoreMaps(t *testing.T) {
	checker := decision.NewChecker()

	t.Run("unknown priority scores 3.0", func(t *testing.T) {
		spec := fullSpec()
		spec.Priority = "critical"
		assert.Equal(t, 3.0, checker.Evaluate(spec).Scores.Impact)
	})

	t.Run("missing priority defaults to medium", func(t *testing.T) {
		spec := fullSpec()
		spec.Priority = ""
		assert.Equal(t, 3.5, checker.Evaluate(spec).Scores.Impact)
	})

	t.Run("monthly is most feasible", func(t *testing.T) {
		spec := fullSpec()
		spec.Frequency = "monthly"
		assert.Equal(t, 5.0, checker.Evaluate(spec).Scores.Feasibility)
	})

	t.Run("unknown frequency scores 3.5", func(t *testing.T) {
		spec := fullSpec()
		spec.Frequency = "sometimes"
		assert.Equal(t, 3.5, checker.Evaluate(spec).Scores.Feasibility)
	})

	t.Run("inputs only scores resources 3.0", func(t *testing.T) {
		spec := fullSpec()
		spec.Outputs = nil
		assert.Equal(t, 3.0, checker.Evaluate(spec).Scores.Resources)
	})
}

func TestEvaluate_FeasibilityFloorBlocks(t *testing.T) {
	checker := decision.NewChecker()

	// Continuous frequency scores feasibility 3.0, right at the floor,
	// so it passes. Push resources below the floor instead.
	spec := fullSpec()
	spec.Inputs = nil
	spec.Outputs = nil

	verdict := checker.Evaluate(spec)

	assert.False(t, verdict.Go)
	assert.Equal(t, "resources below threshold", verdict.Reason)
	assert.GreaterOrEqual(t, verdict.Score, 3.0, "blocked by the floor, not the weighted score")
}

func TestEvaluate_LowEverythingIsNoGo(t *testing.T) {
	checker := decision.NewChecker()

	verdict := checker.Evaluate(domain.TaskSpec{Name: "vague", Priority: "low"})

	assert.False(t, verdict.Go)
}

func TestUpdateCriteria(t *testing.T) {
	checker := decision.NewChecker()
	checker.UpdateCriteria(map[string]decision.Criterion{
		"resources": {Weight: 0.15, Threshold: 5.0},
	})

	verdict := checker.Evaluate(fullSpec())

	assert.False(t, verdict.Go)
	assert.Equal(t, "resources below threshold", verdict.Reason)
}

func TestSummary(t *testing.T) {
	checker := decision.NewChecker()

	specs := []domain.TaskSpec{
		fullSpec(),
		{Name: "vague", Priority: "low"},
	}

	summary := checker.Summary(specs)

	assert.Equal(t, 2, summary.TotalTasks)
	assert.Equal(t, 1, summary.GoDecisions)
	assert.Equal(t, 1, summary.NoGoDecisions)
	require.Len(t, summary.Decisions, 2)
	assert.Greater(t, summary.AverageScore, 0.0)
}

func TestSummary_Empty(t *testing.T) {
	summary := decision.NewChecker().Summary(nil)

	assert.Equal(t, 0, summary.TotalTasks)
	assert.Equal(t, 0.0, summary.AverageScore)
}
