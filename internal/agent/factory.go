package agent

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/aretw0/lifeos/internal/logging"
	"github.com/aretw0/lifeos/pkg/domain"
)

const intelScoutInstructions = `Hunt optionality. Detect fragility. Exploit asymmetry. Avoid ruin.

Your mission:
- Monitor for asymmetric market bets
- Scan for arbitrage and mispriced assets
- Detect fragile systems that could break under stress
- Alert to potential Black Swan events
- Suggest tinkering experiments with capped downside
- Highlight zero-cost or negative-cost options

Mental Models:
- Asymmetry: Look for bets where upside far outweighs downside
- Antifragility: Prefer systems that gain from disorder
- Via Negativa: Subtraction is improvement
- Barbell Strategy: Combine extreme safety + high risk/reward bets
- Convexity: Show nonlinear gains
- Lindy Effect: What has stood the test of time

Never suggest bets without:
- Clear edge
- Built-in hedge or limited downside
- Obvious asymmetry in risk/reward`

const plannerInstructionsFmt = `You are a strategic planning specialist for %s domain.

Your mission:
- Break down complex goals into actionable steps
- Identify resource requirements and constraints
- Map dependencies and critical paths
- Create realistic timelines
- Assess risks and prepare contingencies

Planning Principles:
- No execution without proper planning
- Always have Plan B and Plan C
- Consider circular and path dependencies
- Optimize for optionality preservation
- Build in feedback loops and adjustment mechanisms

Before any execution, ensure:
- Clear success criteria defined
- Resources identified and secured
- Dependencies mapped
- Risks assessed and hedged`

const researcherInstructionsFmt = `You are a research specialist focused on %s.

Your mission:
- Conduct thorough research on assigned topics
- Gather and analyze information from multiple sources
- Identify knowledge gaps and uncertainties
- Provide evidence-based recommendations
- Stay updated on latest developments in your focus area

Research Methodology:
- Primary source analysis
- Cross-referencing and validation
- Identifying biases and limitations
- Quantitative and qualitative analysis
- Trend identification and pattern recognition

Always provide:
- Source credibility assessment
- Confidence levels for findings
- Areas requiring further investigation
- Practical implications and applications`

// Link records a collaboration edge between two agents.
type Link struct {
	From string
	To   string
	Kind string
}

// Factory creates and tracks agents. Safe for concurrent use.
type Factory struct {
	mu     sync.Mutex
	agents map[string]*Agent
	order  []string
	links  []Link
	logger *slog.Logger
}

// NewFactory creates an empty factory.
func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Factory{
		agents: make(map[string]*Agent),
		logger: logger,
	}
}

// Create registers a new agent. Creating over an existing name replaces
// it.
func (f *Factory) Create(name, role, instructions string, capabilities []string) *Agent {
	a := New(name, role, instructions, capabilities)
	a.SetLogger(f.logger)

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.agents[name]; !exists {
		f.order = append(f.order, name)
	}
	f.agents[name] = a

	f.logger.Info("agent created", "name", name, "role", role)
	return a
}

// IntelScout creates the asymmetric opportunity scout. Empty
// instructions select the default mission text.
func (f *Factory) IntelScout(name, instructions string) *Agent {
	if name == "" {
		name = "Intel Scout"
	}
	if instructions == "" {
		instructions = intelScoutInstructions
	}
	return f.Create(name, "Asymmetric Opportunity Scout", instructions,
		[]string{"market_analysis", "fragility_detection", "asymmetric_betting", "risk_assessment"})
}

// Planner creates a strategic planning agent for a domain area.
func (f *Factory) Planner(name, domainArea string) *Agent {
	if name == "" {
		name = "Strategic Planner"
	}
	if domainArea == "" {
		domainArea = "general"
	}
	return f.Create(name,
		fmt.Sprintf("Strategic Planner - %s", domainArea),
		fmt.Sprintf(plannerInstructionsFmt, domainArea),
		[]string{"strategic_planning", "goal_decomposition", "resource_planning", "risk_assessment"})
}

// Researcher creates a research agent for a focus area.
func (f *Factory) Researcher(name, focusArea string) *Agent {
	if name == "" {
		name = "Research Specialist"
	}
	if focusArea == "" {
		focusArea = "general"
	}
	return f.Create(name,
		fmt.Sprintf("Research Specialist - %s", focusArea),
		fmt.Sprintf(researcherInstructionsFmt, focusArea),
		[]string{"research", "analysis", "information_gathering", "trend_identification"})
}

// Get returns an agent by name.
func (f *Factory) Get(name string) (*Agent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.agents[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAgentNotFound, name)
	}
	return a, nil
}

// Names returns the created agent names in creation order.
func (f *Factory) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.order...)
}

// Link connects two agents for collaboration. Both must exist.
func (f *Factory) Link(from, to, kind string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, name := range []string{from, to} {
		if _, ok := f.agents[name]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrAgentNotFound, name)
		}
	}

	f.links = append(f.links, Link{From: from, To: to, Kind: kind})
	f.logger.Info("agents linked", "from", from, "to", to, "kind", kind)
	return nil
}

// Links returns the collaboration edges, sorted for stable output.
func (f *Factory) Links() []Link {
	f.mu.Lock()
	defer f.mu.Unlock()

	links := append([]Link{}, f.links...)
	sort.SliceStable(links, func(i, j int) bool {
		if links[i].From != links[j].From {
			return links[i].From < links[j].From
		}
		return links[i].To < links[j].To
	})
	return links
}
