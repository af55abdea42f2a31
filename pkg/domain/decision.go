package domain

// TaskSpec is a task configuration submitted to the go/no-go checker.
// It decodes from the YAML task config shape via mapstructure.
type TaskSpec struct {
	Name            string         `mapstructure:"name" json:"name"`
	Priority        string         `mapstructure:"priority" json:"priority"`   // low | medium | high
	Frequency       string         `mapstructure:"frequency" json:"frequency"` // continuous | daily | weekly | monthly
	SuccessCriteria map[string]any `mapstructure:"success_criteria" json:"success_criteria,omitempty"`
	Inputs          []string       `mapstructure:"inputs" json:"inputs,omitempty"`
	Outputs         []string       `mapstructure:"outputs" json:"outputs,omitempty"`
	AssignedAgent   string         `mapstructure:"assigned_agent" json:"assigned_agent,omitempty"`
	Description     string         `mapstructure:"description" json:"description,omitempty"`
}

// IsZero reports whether the spec carries no information at all.
// An empty spec is always a no-go.
func (t TaskSpec) IsZero() bool {
	return t.Name == "" && t.Priority == "" && t.Frequency == "" &&
		len(t.SuccessCriteria) == 0 && len(t.Inputs) == 0 &&
		len(t.Outputs) == 0 && t.AssignedAgent == ""
}

// Scorecard holds the per-criterion scores of one evaluation (1.0–5.0).
type Scorecard struct {
	Impact      float64 `json:"impact"`
	Feasibility float64 `json:"feasibility"`
	Alignment   float64 `json:"alignment"`
	Resources   float64 `json:"resources"`
	Timing      float64 `json:"timing"`
}

// Verdict is the result of one go/no-go evaluation.
type Verdict struct {
	Task     string    `json:"task"`
	Go       bool      `json:"decision"`
	Score    float64   `json:"score"`
	Scores   Scorecard `json:"scores"`
	Reason   string    `json:"reason,omitempty"`
}

// DecisionSummary aggregates verdicts over a batch of tasks.
type DecisionSummary struct {
	TotalTasks   int       `json:"total_tasks"`
	GoDecisions  int       `json:"go_decisions"`
	NoGoDecisions int      `json:"no_go_decisions"`
	AverageScore float64   `json:"average_score"`
	Decisions    []Verdict `json:"decisions"`
}
