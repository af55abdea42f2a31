package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lifeos/pkg/domain"
)

func TestGenerate_SelectsHighestScoringOption(t *testing.T) {
	branch := NewBranch(nil)

	plan := branch.Generate()

	// High (0.8) x Very High (10) beats the alternatives.
	assert.Equal(t, "AI-First Strategy", plan.Primary.Name)
	assert.Len(t, plan.Supporting, 2)
	assert.Len(t, plan.Options, 3)
	assert.Len(t, plan.Contingencies, 3)
	assert.Len(t, plan.Priorities, 3)
	assert.NotEmpty(t, plan.SWOT.Strengths)
	assert.Contains(t, plan.Games, "financial_game")
}

func TestScoreOption(t *testing.T) {
	high := domain.StrategicOption{SuccessProbability: "High", AsymmetricPotential: "Very High"}
	medium := domain.StrategicOption{SuccessProbability: "Medium", AsymmetricPotential: "Very High"}
	unknown := domain.StrategicOption{SuccessProbability: "Unsure", AsymmetricPotential: "Whatever"}

	assert.Equal(t, 8.0, scoreOption(high))
	assert.Equal(t, 5.0, scoreOption(medium))
	assert.Equal(t, 0.5, scoreOption(unknown))
}

func TestProcessIntel_TriggersOnTopPriority(t *testing.T) {
	branch := NewBranch(nil)

	briefing := &domain.Briefing{
		Opportunities:   []domain.Opportunity{{Description: "skill arbitrage"}},
		Fragilities:     []domain.Fragility{{System: "employment"}},
		PriorityActions: []domain.PriorityAction{{Priority: 1, Action: "act now"}},
	}

	plan := branch.ProcessIntel(briefing)

	require.NotNil(t, plan)
	assert.Equal(t, 1, branch.Status().PlansGenerated)
}

func TestProcessIntel_NoTriggerWithoutTopPriority(t *testing.T) {
	branch := NewBranch(nil)

	briefing := &domain.Briefing{
		PriorityActions: []domain.PriorityAction{{Priority: 2, Action: "later"}},
	}

	assert.Nil(t, branch.ProcessIntel(briefing))
	assert.Equal(t, 0, branch.Status().PlansGenerated)
}

func TestProcessIntel_NilBriefing(t *testing.T) {
	branch := NewBranch(nil)
	assert.Nil(t, branch.ProcessIntel(nil))
}

func TestEmergency(t *testing.T) {
	branch := NewBranch(nil)

	resp := branch.Emergency()

	assert.Equal(t, "defensive_posture", resp.ResponseType)
	assert.Contains(t, resp.ImmediateActions, "Preserve capital")
}

func TestStatus(t *testing.T) {
	branch := NewBranch(nil)
	assert.Equal(t, "Never", branch.Status().LastUpdate)

	branch.Generate()

	status := branch.Status()
	assert.Equal(t, 1, status.PlansGenerated)
	assert.NotEqual(t, "Never", status.LastUpdate)
}
