package agent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lifeos/internal/agent"
	"github.com/aretw0/lifeos/pkg/domain"
)

func TestFactory_CreateAndGet(t *testing.T) {
	factory := agent.NewFactory(nil)
	factory.Create("Scout", "Intel Scout", "watch everything", []string{"scanning"})

	a, err := factory.Get("Scout")
	require.NoError(t, err)
	assert.Equal(t, "Intel Scout", a.Role)

	_, err = factory.Get("Nobody")
	assert.ErrorIs(t, err, domain.ErrAgentNotFound)
}

func TestFactory_DefaultInstructions(t *testing.T) {
	factory := agent.NewFactory(nil)

	scout := factory.IntelScout("", "")
	assert.Contains(t, scout.Instructions, "Hunt optionality")
	assert.Contains(t, scout.Instructions, "Barbell Strategy")

	planner := factory.Planner("", "finance")
	assert.Equal(t, "Strategic Planner - finance", planner.Role)
	assert.Contains(t, planner.Instructions, "finance domain")

	researcher := factory.Researcher("", "markets")
	assert.Equal(t, "Research Specialist - markets", researcher.Role)
}

func TestFactory_LinkRequiresBothAgents(t *testing.T) {
	factory := agent.NewFactory(nil)
	factory.Create("A", "Generalist", "", nil)

	err := factory.Link("A", "B", "collaboration")
	assert.ErrorIs(t, err, domain.ErrAgentNotFound)

	factory.Create("B", "Generalist", "", nil)
	require.NoError(t, factory.Link("A", "B", "collaboration"))
	require.Len(t, factory.Links(), 1)
	assert.Equal(t, "collaboration", factory.Links()[0].Kind)
}

func TestCoordinator_SetupDefaults(t *testing.T) {
	coord := agent.NewCoordinator(nil, nil)
	coord.SetupDefaults()

	names := coord.Factory().Names()
	assert.Equal(t, []string{"Intel Scout", "Strategic Planner", "Research Specialist"}, names)
	assert.Len(t, coord.Factory().Links(), 3)
}

func TestCoordinator_Broadcast(t *testing.T) {
	coord := agent.NewCoordinator(nil, nil)
	coord.SetupDefaults()

	t.Run("all agents", func(t *testing.T) {
		responses := coord.Broadcast(context.Background(), "market scan", nil)
		assert.Len(t, responses, 3)
	})

	t.Run("subset with unknown name", func(t *testing.T) {
		responses := coord.Broadcast(context.Background(), "market scan", []string{"Intel Scout", "Ghost"})
		require.Len(t, responses, 1)
		assert.Contains(t, responses, "Intel Scout")
	})
}

func TestCoordinator_IntelToStrategyWorkflow(t *testing.T) {
	coord := agent.NewCoordinator(nil, nil)
	coord.SetupDefaults()

	result, err := coord.RunWorkflow(context.Background(), "intel_to_strategy", "new market opportunity")
	require.NoError(t, err)

	assert.Equal(t, "completed", result.Status)
	require.Contains(t, result.Reports, "intel_report")
	require.Contains(t, result.Reports, "strategy_plan")
	assert.NotEmpty(t, result.Reports["intel_report"].Opportunities)
}

func TestCoordinator_ResearchDeepDiveWorkflow(t *testing.T) {
	coord := agent.NewCoordinator(nil, nil)
	coord.SetupDefaults()

	result, err := coord.RunWorkflow(context.Background(), "research_deep_dive", "longevity research")
	require.NoError(t, err)

	assert.Equal(t, "completed", result.Status)
	assert.Contains(t, result.Reports["research_report"].Analysis, "longevity research")
}

func TestCoordinator_UnknownWorkflow(t *testing.T) {
	coord := agent.NewCoordinator(nil, nil)
	coord.SetupDefaults()

	_, err := coord.RunWorkflow(context.Background(), "mystery_workflow", "q")
	assert.ErrorIs(t, err, domain.ErrUnknownWorkflow)
}

func TestCoordinator_WorkflowWithoutAgents(t *testing.T) {
	coord := agent.NewCoordinator(agent.NewFactory(nil), nil)

	_, err := coord.RunWorkflow(context.Background(), "intel_to_strategy", "q")
	assert.ErrorIs(t, err, domain.ErrAgentNotFound)
}
