package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/lifeos/internal/logging"
	"github.com/aretw0/lifeos/pkg/domain"
)

// WorkflowResult is the outcome of one predefined multi-agent workflow.
type WorkflowResult struct {
	Workflow string                          `json:"workflow"`
	Reports  map[string]*domain.AgentResponse `json:"reports"`
	Status   string                          `json:"status"`
}

// Coordinator runs multi-agent queries and predefined workflows over a
// factory's agents.
type Coordinator struct {
	factory *Factory
	logger  *slog.Logger
}

// NewCoordinator wraps a factory. A nil factory gets a fresh one.
func NewCoordinator(factory *Factory, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = logging.NewNop()
	}
	if factory == nil {
		factory = NewFactory(logger)
	}
	return &Coordinator{factory: factory, logger: logger}
}

// Factory exposes the underlying agent factory.
func (c *Coordinator) Factory() *Factory {
	return c.factory
}

// SetupDefaults creates the default agent network: intel scout, strategic
// planner, and research specialist, with their collaboration links.
func (c *Coordinator) SetupDefaults() {
	c.factory.IntelScout("", "")
	c.factory.Planner("Strategic Planner", "life_optimization")
	c.factory.Researcher("Research Specialist", "opportunities")

	// Links cannot fail here, all three agents were just created.
	_ = c.factory.Link("Intel Scout", "Strategic Planner", "intel_feed")
	_ = c.factory.Link("Research Specialist", "Intel Scout", "data_support")
	_ = c.factory.Link("Strategic Planner", "Research Specialist", "validation")

	c.logger.Info("default agent network established")
}

// Broadcast sends a query to the named agents and collects their
// responses. An empty name list targets every agent.
func (c *Coordinator) Broadcast(ctx context.Context, query string, names []string) map[string]*domain.AgentResponse {
	if len(names) == 0 {
		names = c.factory.Names()
	}

	responses := make(map[string]*domain.AgentResponse, len(names))
	for _, name := range names {
		a, err := c.factory.Get(name)
		if err != nil {
			c.logger.Warn("skipping unknown agent", "name", name)
			continue
		}
		responses[name] = a.Process(ctx, query, domain.ExecContext{})
	}
	return responses
}

// RunWorkflow executes one of the predefined workflows.
func (c *Coordinator) RunWorkflow(ctx context.Context, workflow, query string) (*WorkflowResult, error) {
	switch workflow {
	case "intel_to_strategy":
		return c.intelToStrategy(ctx, query)
	case "research_deep_dive":
		return c.researchDeepDive(ctx, query)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownWorkflow, workflow)
	}
}

// intelToStrategy feeds the scout's intel into the planner.
func (c *Coordinator) intelToStrategy(ctx context.Context, query string) (*WorkflowResult, error) {
	scout, err := c.factory.Get("Intel Scout")
	if err != nil {
		return nil, err
	}
	planner, err := c.factory.Get("Strategic Planner")
	if err != nil {
		return nil, err
	}

	intel := scout.Process(ctx, query, domain.ExecContext{})
	plan := planner.Process(ctx,
		fmt.Sprintf("Based on intel with %d opportunities, create a strategic plan for: %s",
			len(intel.Opportunities), query),
		domain.ExecContext{})

	return &WorkflowResult{
		Workflow: "intel_to_strategy",
		Reports: map[string]*domain.AgentResponse{
			"intel_report":  intel,
			"strategy_plan": plan,
		},
		Status: "completed",
	}, nil
}

func (c *Coordinator) researchDeepDive(ctx context.Context, query string) (*WorkflowResult, error) {
	researcher, err := c.factory.Get("Research Specialist")
	if err != nil {
		return nil, err
	}

	report := researcher.Process(ctx, query, domain.ExecContext{})

	return &WorkflowResult{
		Workflow: "research_deep_dive",
		Reports: map[string]*domain.AgentResponse{
			"research_report": report,
		},
		Status: "completed",
	}, nil
}
