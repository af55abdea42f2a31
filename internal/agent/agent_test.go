package agent_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/lifeos/internal/agent"
	"github.com/aretw0/lifeos/internal/docmanager"
	"github.com/aretw0/lifeos/internal/protocol"
	"github.com/aretw0/lifeos/pkg/adapters/memory"
	"github.com/aretw0/lifeos/pkg/domain"
)

func TestProcess_IntelRoleDispatch(t *testing.T) {
	factory := agent.NewFactory(nil)
	scout := factory.IntelScout("", "")

	resp := scout.Process(context.Background(), "Is this market opportunity worth a bet?", domain.ExecContext{})

	assert.Equal(t, "Intel Scout", resp.Agent)
	require.NotEmpty(t, resp.Opportunities)
	assert.Equal(t, "market_opportunity", resp.Opportunities[0].Type)
	assert.Contains(t, resp.Recommendations, "Focus on preserving optionality - avoid irreversible decisions")
	assert.Equal(t, 0.85, resp.Confidence)
}

func TestProcess_IntelFragilityDetection(t *testing.T) {
	factory := agent.NewFactory(nil)
	scout := factory.IntelScout("", "")

	resp := scout.Process(context.Background(), "Assess our platform dependency", domain.ExecContext{})

	require.NotEmpty(t, resp.Fragilities)
	assert.Equal(t, "system_fragility", resp.Fragilities[0].Type)
	assert.Empty(t, resp.Opportunities)
}

func TestProcess_PlanningRoleUsesEngine(t *testing.T) {
	factory := agent.NewFactory(nil)
	planner := factory.Planner("", "general")
	planner.Connect(docmanager.NewManager(memory.NewStore()), protocol.NewEngine())

	resp := planner.Process(context.Background(), "plan my next quarter", domain.ExecContext{})

	assert.Equal(t, []string{"intel_gathering", "planning_protocol", "preparation_protocol"}, resp.RequiredProtocols)
	assert.Len(t, resp.Breakdown, 3)
	assert.Equal(t, 0.9, resp.Confidence)
}

func TestProcess_ExecutionRoleGateCheck(t *testing.T) {
	factory := agent.NewFactory(nil)
	exec := factory.Create("Operator", "Execution Specialist", "execute precisely", nil)

	t.Run("blocked", func(t *testing.T) {
		resp := exec.Process(context.Background(), "ship it", domain.ExecContext{})
		assert.False(t, resp.CanExecute)
		assert.Contains(t, resp.BlockingIssues, "No planning completed")
		assert.Equal(t, 0.3, resp.Confidence)
	})

	t.Run("cleared", func(t *testing.T) {
		resp := exec.Process(context.Background(), "ship it", domain.ExecContext{
			PlanningCompleted:    true,
			PreparationCompleted: true,
		})
		assert.True(t, resp.CanExecute)
		assert.Equal(t, []string{"Setup", "Execute", "Monitor", "Adjust"}, resp.ExecutionPlan)
	})
}

func TestProcess_GeneralRoleRouting(t *testing.T) {
	factory := agent.NewFactory(nil)
	generic := factory.Create("Helper", "Generalist", "be helpful", nil)

	resp := generic.Process(context.Background(), "what now", domain.ExecContext{})

	assert.Equal(t, "Route to specialized agent if available", resp.Routing)
	assert.Equal(t, 0.7, resp.Confidence)
}

func TestProcess_ConnectedAgentConsultsDocuments(t *testing.T) {
	mgr := docmanager.NewManager(memory.NewStore())
	_, err := mgr.Create(context.Background(), "Barbell Playbook", domain.DocTypePlaybook, "barbell strategy notes")
	require.NoError(t, err)

	factory := agent.NewFactory(nil)
	scout := factory.IntelScout("", "")
	scout.Connect(mgr, protocol.NewEngine())

	resp := scout.Process(context.Background(), "barbell opportunity", domain.ExecContext{})

	require.NotEmpty(t, resp.Reasoning)
	assert.Contains(t, resp.Reasoning[len(resp.Reasoning)-1], "Barbell Playbook")
}

func TestSimilarExchanges(t *testing.T) {
	factory := agent.NewFactory(nil)
	scout := factory.IntelScout("", "")
	ctx := context.Background()

	scout.Process(ctx, "scan crypto market for opportunity", domain.ExecContext{})
	scout.Process(ctx, "completely unrelated gardening question", domain.ExecContext{})

	similar := scout.SimilarExchanges("scan equity market for opportunity")

	require.Len(t, similar, 1)
	assert.Equal(t, "scan crypto market for opportunity", similar[0].Exchange.Query)
	assert.Greater(t, similar[0].Similarity, 0.3)
}

func TestSimilarExchanges_OnlyRecentTen(t *testing.T) {
	factory := agent.NewFactory(nil)
	scout := factory.IntelScout("", "")
	ctx := context.Background()

	scout.Process(ctx, "ancient unique zebra query", domain.ExecContext{})
	for i := 0; i < 10; i++ {
		scout.Process(ctx, fmt.Sprintf("filler query number %d", i), domain.ExecContext{})
	}

	similar := scout.SimilarExchanges("ancient unique zebra query")
	assert.Empty(t, similar, "exchanges older than the last ten are not considered")
}

func TestMemoryBounded(t *testing.T) {
	factory := agent.NewFactory(nil)
	scout := factory.IntelScout("", "")
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		scout.Process(ctx, fmt.Sprintf("query %d", i), domain.ExecContext{})
	}

	status := scout.Status()
	assert.Equal(t, 50, status.MemorySize)
	assert.Equal(t, 60, status.TasksCompleted)
	assert.Equal(t, 1.0, status.SuccessRate)
}

func TestStatus_Connected(t *testing.T) {
	factory := agent.NewFactory(nil)
	scout := factory.IntelScout("", "")

	assert.False(t, scout.Status().Connected)

	scout.Connect(docmanager.NewManager(memory.NewStore()), protocol.NewEngine())
	assert.True(t, scout.Status().Connected)
}
