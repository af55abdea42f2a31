package domain

import "time"

// SWOT is a strengths/weaknesses/opportunities/threats analysis.
type SWOT struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

// Game describes one strategic game under analysis.
type Game struct {
	Players         []string `json:"players"`
	PayoffMatrix    string   `json:"payoff_matrix"`
	OptimalStrategy string   `json:"optimal_strategy"`
	NashEquilibrium string   `json:"nash_equilibrium"`
}

// StrategicOption is a candidate strategy with its scoring inputs.
type StrategicOption struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	Resources          string `json:"resource_requirements"`
	TimeHorizon        string `json:"time_horizon"`
	SuccessProbability string `json:"success_probability"` // High | Medium | Low
	AsymmetricPotential string `json:"asymmetric_potential"` // Very High | High | Medium | Low
}

// Contingency pairs a scenario with the prepared response.
type Contingency struct {
	Scenario    string `json:"scenario"`
	Response    string `json:"response"`
	Preparation string `json:"preparation,omitempty"`
}

// ExecutionPriority is one ranked strategic execution item.
type ExecutionPriority struct {
	Priority   int    `json:"priority"`
	Task       string `json:"task"`
	Deadline   string `json:"deadline"`
	Allocation string `json:"resource_allocation,omitempty"`
}

// StrategicPlan is the directional branch's output.
type StrategicPlan struct {
	Timestamp     time.Time           `json:"timestamp"`
	SWOT          SWOT                `json:"swot_analysis"`
	Games         map[string]Game     `json:"game_analysis"`
	Options       []StrategicOption   `json:"strategic_options"`
	Primary       StrategicOption     `json:"optimal_strategy"`
	Supporting    []StrategicOption   `json:"supporting_strategies,omitempty"`
	Rationale     string              `json:"rationale"`
	Contingencies []Contingency       `json:"contingency_plans"`
	Priorities    []ExecutionPriority `json:"execution_priorities"`
}

// Task is an actionable operational item derived from a strategy.
type Task struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"` // learning | project | research | networking
	Priority        int      `json:"priority"`
	Deadline        string   `json:"deadline"`
	Resources       []string `json:"resources_required,omitempty"`
	SuccessCriteria string   `json:"success_criteria,omitempty"`
	Approved        bool     `json:"approved"`
}

// Operation groups tasks of one type for coordinated execution.
type Operation struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Tasks     []Task    `json:"tasks"`
	Status    string    `json:"status"` // active | delayed | blocked
	StartedAt time.Time `json:"start_time"`
}

// ExecutionPlan is the executive branch's organization of a strategy.
type ExecutionPlan struct {
	TotalTasks   int                 `json:"total_tasks"`
	Groups       map[string][]Task   `json:"task_groups"`
	Timeline     map[string][]string `json:"execution_timeline"`
	CriticalPath []string            `json:"critical_path"`
}

// WingReport is the status structure a wing produces on a check.
type WingReport struct {
	Wing      string         `json:"wing"`
	Timestamp time.Time      `json:"timestamp"`
	Sections  map[string]any `json:"sections"`
	Actions   []string       `json:"recommended_actions,omitempty"`
}

// RoutineResult captures one full daily routine run.
type RoutineResult struct {
	Date       string             `json:"date"`
	Timestamp  time.Time          `json:"timestamp"`
	Briefing   *Briefing          `json:"intel_briefing,omitempty"`
	Strategy   *StrategicPlan     `json:"strategic_direction,omitempty"`
	Execution  *ExecutionPlan     `json:"execution_plan,omitempty"`
	Evolutions []WorldviewUpdate  `json:"document_evolutions,omitempty"`
	Health     map[string]any     `json:"system_health,omitempty"`
	Err        string             `json:"error,omitempty"`
}
