// Package strategy implements the directional branch: SWOT analysis,
// game theory framing, and strategic plan generation.
package strategy

import (
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/lifeos/internal/logging"
	"github.com/aretw0/lifeos/pkg/domain"
)

// Status summarizes the directional branch's state.
type Status struct {
	PlansGenerated   int    `json:"strategic_plans_generated"`
	ContingencyPlans int    `json:"contingency_plans"`
	LastUpdate       string `json:"last_strategy_update"`
}

// EmergencyResponse is the defensive plan produced under threat.
type EmergencyResponse struct {
	ResponseType     string   `json:"response_type"`
	ImmediateActions []string `json:"immediate_actions"`
	Adjustments      string   `json:"strategic_adjustments"`
}

// Branch is the strategic mind of the system. Safe for concurrent use.
type Branch struct {
	mu            sync.Mutex
	opportunities []string
	threats       []string
	plans         []*domain.StrategicPlan

	logger *slog.Logger
}

// NewBranch creates the directional branch.
func NewBranch(logger *slog.Logger) *Branch {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Branch{logger: logger}
}

// ProcessIntel folds a briefing into the strategic position. A briefing
// carrying a top-priority action triggers a full strategy generation and
// returns the plan; otherwise nil.
func (b *Branch) ProcessIntel(briefing *domain.Briefing) *domain.StrategicPlan {
	if briefing == nil {
		return nil
	}

	b.mu.Lock()
	for _, opp := range briefing.Opportunities {
		b.opportunities = append(b.opportunities, opp.Description)
	}
	for _, frag := range briefing.Fragilities {
		b.threats = append(b.threats, frag.System)
	}
	significant := false
	for _, action := range briefing.PriorityActions {
		if action.Priority == 1 {
			significant = true
			break
		}
	}
	b.mu.Unlock()

	if !significant {
		return nil
	}

	b.logger.Info("significant changes detected, triggering strategic review")
	return b.Generate()
}

// Generate produces a full strategic plan.
func (b *Branch) Generate() *domain.StrategicPlan {
	b.logger.Info("generating strategic plan")

	options := strategicOptions()
	primary, supporting := selectOptimal(options)

	plan := &domain.StrategicPlan{
		Timestamp:     time.Now(),
		SWOT:          swotAnalysis(),
		Games:         gameAnalysis(),
		Options:       options,
		Primary:       primary,
		Supporting:    supporting,
		Rationale:     "Highest expected value with asymmetric upside",
		Contingencies: contingencyPlans(),
		Priorities:    executionPriorities(),
	}

	b.mu.Lock()
	b.plans = append(b.plans, plan)
	b.mu.Unlock()

	return plan
}

// Emergency produces a defensive posture plan.
func (b *Branch) Emergency() EmergencyResponse {
	b.logger.Warn("generating emergency strategy")
	return EmergencyResponse{
		ResponseType:     "defensive_posture",
		ImmediateActions: []string{"Preserve capital", "Secure relationships", "Maintain flexibility"},
		Adjustments:      "Shift to antifragile positioning",
	}
}

// Status reports the branch's state.
func (b *Branch) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()

	status := Status{
		PlansGenerated:   len(b.plans),
		ContingencyPlans: len(b.plans) * 3,
		LastUpdate:       "Never",
	}
	if len(b.plans) > 0 {
		status.LastUpdate = b.plans[len(b.plans)-1].Timestamp.Format(time.RFC3339)
	}
	return status
}

// selectOptimal scores every option by success probability times
// asymmetric potential and splits primary from supporting.
func selectOptimal(options []domain.StrategicOption) (domain.StrategicOption, []domain.StrategicOption) {
	if len(options) == 0 {
		return domain.StrategicOption{}, nil
	}

	best := 0
	for i, opt := range options {
		if scoreOption(opt) > scoreOption(options[best]) {
			best = i
		}
	}

	var supporting []domain.StrategicOption
	for i, opt := range options {
		if i != best {
			supporting = append(supporting, opt)
		}
	}
	return options[best], supporting
}

func scoreOption(opt domain.StrategicOption) float64 {
	probability := map[string]float64{"High": 0.8, "Medium": 0.5, "Low": 0.2}
	asymmetry := map[string]float64{"Very High": 10, "High": 5, "Medium": 2, "Low": 1}

	p, ok := probability[opt.SuccessProbability]
	if !ok {
		p = 0.5
	}
	a, ok := asymmetry[opt.AsymmetricPotential]
	if !ok {
		a = 1
	}
	return p * a
}

func swotAnalysis() domain.SWOT {
	return domain.SWOT{
		Strengths: []string{
			"High adaptability and learning rate",
			"Strong analytical and strategic thinking",
			"Growing network in tech/AI space",
			"Antifragile mindset and risk management",
		},
		Weaknesses: []string{
			"Limited initial capital for big bets",
			"Single person operation - capacity constraints",
			"Building reputation and credibility",
		},
		Opportunities: []string{
			"AI revolution creating massive skill arbitrage",
			"Remote work enabling geographic arbitrage",
			"Creator economy and network effects",
			"Crypto/DeFi infrastructure still emerging",
		},
		Threats: []string{
			"Traditional employment becoming fragile",
			"Platform dependency risks",
			"Economic uncertainty and volatility",
			"Skill obsolescence from AI advancement",
		},
	}
}

func gameAnalysis() map[string]domain.Game {
	return map[string]domain.Game{
		"career_game": {
			Players:         []string{"self", "employers", "clients", "competitors"},
			PayoffMatrix:    "Win-win through value creation",
			OptimalStrategy: "Build unique AI-human collaboration skills",
			NashEquilibrium: "Specialized expertise + network effects",
		},
		"financial_game": {
			Players:         []string{"self", "markets", "other_investors"},
			PayoffMatrix:    "Asymmetric risk/reward",
			OptimalStrategy: "Barbell approach - safe + high convexity bets",
			NashEquilibrium: "Diversified antifragile portfolio",
		},
		"social_game": {
			Players:         []string{"self", "network", "audience", "collaborators"},
			PayoffMatrix:    "Network effects and reciprocity",
			OptimalStrategy: "Authentic value creation and relationship building",
			NashEquilibrium: "Mutual value exchange",
		},
	}
}

func strategicOptions() []domain.StrategicOption {
	return []domain.StrategicOption{
		{
			Name:                "AI-First Strategy",
			Description:         "Become expert in AI-human collaboration",
			Resources:           "Medium",
			TimeHorizon:         "6-12 months",
			SuccessProbability:  "High",
			AsymmetricPotential: "Very High",
		},
		{
			Name:                "Geographic Arbitrage",
			Description:         "Optimize location for cost/quality of life",
			Resources:           "Low",
			TimeHorizon:         "3-6 months",
			SuccessProbability:  "High",
			AsymmetricPotential: "Medium",
		},
		{
			Name:                "Content Platform Strategy",
			Description:         "Build audience through valuable content",
			Resources:           "Medium",
			TimeHorizon:         "12-24 months",
			SuccessProbability:  "Medium",
			AsymmetricPotential: "Very High",
		},
	}
}

func contingencyPlans() []domain.Contingency {
	return []domain.Contingency{
		{
			Scenario:    "AI skills become commoditized",
			Response:    "Pivot to AI strategy and implementation consulting",
			Preparation: "Build management and communication skills",
		},
		{
			Scenario:    "Economic recession",
			Response:    "Focus on essential services and cost reduction",
			Preparation: "Build recession-proof skills and relationships",
		},
		{
			Scenario:    "Major platform changes",
			Response:    "Activate direct audience relationships",
			Preparation: "Build email list and owned media properties",
		},
	}
}

func executionPriorities() []domain.ExecutionPriority {
	return []domain.ExecutionPriority{
		{Priority: 1, Task: "Develop AI collaboration skills", Deadline: "60 days", Allocation: "40% of time"},
		{Priority: 2, Task: "Build high-value network connections", Deadline: "90 days", Allocation: "30% of time"},
		{Priority: 3, Task: "Create content demonstrating expertise", Deadline: "120 days", Allocation: "30% of time"},
	}
}
