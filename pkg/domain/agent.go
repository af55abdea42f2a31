package domain

import "time"

// Exchange is one request/response pair in an agent's conversation memory.
type Exchange struct {
	Timestamp time.Time      `json:"timestamp"`
	Query     string         `json:"query"`
	Response  *AgentResponse `json:"response"`
	Success   bool           `json:"success"`
}

// Opportunity is an asymmetric opportunity surfaced by intel reasoning.
type Opportunity struct {
	ID             string  `json:"opportunity_id,omitempty"`
	Type           string  `json:"type"`
	Description    string  `json:"description"`
	AsymmetryRatio string  `json:"asymmetry_ratio,omitempty"`
	Upside         string  `json:"upside,omitempty"`
	Downside       string  `json:"downside,omitempty"`
	Edge           string  `json:"edge,omitempty"`
	Hedge          string  `json:"hedge,omitempty"`
	Leverage       string  `json:"leverage,omitempty"`
	TimeWindow     string  `json:"time_window,omitempty"`
	Confidence     float64 `json:"confidence,omitempty"`
	Action         string  `json:"action_required,omitempty"`
}

// Fragility is a fragile system flagged by intel reasoning.
type Fragility struct {
	ID            string   `json:"fragility_id,omitempty"`
	System        string   `json:"system"`
	Type          string   `json:"fragility_type"`
	Description   string   `json:"description,omitempty"`
	StressFactors []string `json:"stress_factors,omitempty"`
	HedgeStrategy string   `json:"hedge_strategy,omitempty"`
	Urgency       string   `json:"urgency,omitempty"`
}

// AgentResponse is the structured result of an agent processing a query.
// Fields are populated depending on the reasoning path taken; the shape is
// intentionally a superset across intel, planning, execution, research, and
// general reasoning.
type AgentResponse struct {
	Agent          string        `json:"agent"`
	Role           string        `json:"role"`
	Reasoning      []string      `json:"reasoning_process,omitempty"`
	Recommendations []string     `json:"recommendations,omitempty"`
	Opportunities  []Opportunity `json:"opportunities_detected,omitempty"`
	Fragilities    []Fragility   `json:"fragilities_identified,omitempty"`
	NextActions    []string      `json:"next_actions,omitempty"`

	// Planning reasoning
	Breakdown         []string `json:"strategic_breakdown,omitempty"`
	RequiredProtocols []string `json:"required_protocols,omitempty"`
	Resources         []string `json:"resource_requirements,omitempty"`
	RiskAssessment    string   `json:"risk_assessment,omitempty"`

	// Execution reasoning
	CanExecute     bool     `json:"can_execute,omitempty"`
	BlockingIssues []string `json:"blocking_issues,omitempty"`
	ExecutionPlan  []string `json:"execution_plan,omitempty"`

	// Research / general reasoning
	Analysis string `json:"analysis,omitempty"`
	Routing  string `json:"suggested_routing,omitempty"`

	Confidence float64 `json:"confidence_level"`
}

// AgentStatus summarizes an agent's state and performance.
type AgentStatus struct {
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	TasksCompleted int      `json:"tasks_completed"`
	SuccessRate    float64  `json:"success_rate"`
	MemorySize     int      `json:"memory_size"`
	Capabilities   []string `json:"capabilities,omitempty"`
	Connected      bool     `json:"connected"`
}
