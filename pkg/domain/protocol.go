package domain

import "time"

// ProtocolStatus defines the lifecycle of a protocol execution.
type ProtocolStatus string

const (
	StatusNotStarted ProtocolStatus = "not_started"
	StatusGoCheck    ProtocolStatus = "go_check"
	StatusNoGo       ProtocolStatus = "no_go"
	StatusInProgress ProtocolStatus = "in_progress"
	StatusCompleted  ProtocolStatus = "completed"
	StatusFailed     ProtocolStatus = "failed"
)

// DependencyType classifies how one protocol depends on another.
type DependencyType string

const (
	// DepPath means the dependency must complete before this protocol runs.
	DepPath DependencyType = "path"
	// DepCircular marks two protocols as mutually reinforcing. It is
	// informational and exempt from the acyclicity check.
	DepCircular DependencyType = "circular"
	// DepScale signals that the approach varies with scale. Informational.
	DepScale DependencyType = "scale"
)

// Dependency is an edge from a protocol to one it depends on.
type Dependency struct {
	Protocol string         `json:"protocol" yaml:"protocol"`
	Type     DependencyType `json:"type" yaml:"type"`
}

// Gate holds the go/no-go criteria for a protocol. Keys are criterion names
// (e.g. "requires_planning"); a true value makes the criterion binding.
type Gate map[string]bool

// Known gate criteria. Anything else in a Gate is ignored by the engine.
const (
	GateRequiresPlanning         = "requires_planning"
	GateRequiresPreparation      = "requires_preparation"
	GateRequiresIntel            = "requires_intel"
	GateRequiresClearObjective   = "requires_clear_objective"
	GateRequiresEdgeHedgeLeverage = "requires_edge_hedge_leverage"
)

// StepRecord logs the execution of a single protocol step.
type StepRecord struct {
	Index     int       `json:"step"`
	Name      string    `json:"step_name"`
	Timestamp time.Time `json:"timestamp"`
}

// Protocol is an ordered list of steps guarded by go/no-go criteria and
// dependencies on other protocols.
type Protocol struct {
	Name         string       `json:"name" yaml:"name"`
	Steps        []string     `json:"steps" yaml:"steps"`
	Gate         Gate         `json:"go_no_go_criteria" yaml:"go_no_go_criteria"`
	Status       ProtocolStatus `json:"status"`
	Dependencies []Dependency `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	CurrentStep  int          `json:"current_step"`
	ExecutionLog []StepRecord `json:"execution_log,omitempty"`
}

// NewProtocol creates a protocol in the not_started state.
func NewProtocol(name string, steps []string, gate Gate) *Protocol {
	return &Protocol{
		Name:   name,
		Steps:  steps,
		Gate:   gate,
		Status: StatusNotStarted,
	}
}

// AddDependency appends a dependency edge.
func (p *Protocol) AddDependency(protocol string, depType DependencyType) {
	p.Dependencies = append(p.Dependencies, Dependency{Protocol: protocol, Type: depType})
}

// PathDeps returns the names of hard (path-typed) dependencies in
// declaration order.
func (p *Protocol) PathDeps() []string {
	var deps []string
	for _, d := range p.Dependencies {
		if d.Type == DepPath {
			deps = append(deps, d.Protocol)
		}
	}
	return deps
}

// ExecResult is the outcome of a protocol execution attempt.
type ExecResult struct {
	Status      string       `json:"status"` // completed | no_go | dependency_failure | error | failed
	Message     string       `json:"message"`
	Required    []string     `json:"required_protocols,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
	Steps       []StepRecord `json:"results,omitempty"`
}

// ExecContext carries the facts the gate check evaluates against.
type ExecContext struct {
	PlanningCompleted    bool `json:"planning_completed"`
	PreparationCompleted bool `json:"preparation_completed"`
	IntelAvailable       bool `json:"intel_available"`
	ClearObjective       bool `json:"clear_objective"`
	EdgeIdentified       bool `json:"edge_identified"`
	HedgeInPlace         bool `json:"hedge_in_place"`
	LeverageCalculated   bool `json:"leverage_calculated"`
}
