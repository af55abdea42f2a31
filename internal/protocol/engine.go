// Package protocol implements the protocol engine: registration with
// dependency validation, gated execution, and workflow suggestion.
package protocol

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifeos/internal/logging"
	"github.com/aretw0/lifeos/internal/metrics"
	"github.com/aretw0/lifeos/pkg/domain"
)

// Engine manages protocol registration and execution with dependency
// resolution. Safe for concurrent use.
type Engine struct {
	mu        sync.Mutex
	protocols map[string]*domain.Protocol
	order     []string

	logger *slog.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger configures a logger for execution events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine pre-seeded with the core planning,
// preparation, and execution protocols.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		protocols: make(map[string]*domain.Protocol),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.seedCoreProtocols()
	return e
}

// Register adds a protocol. Path dependencies must stay acyclic; a
// registration that would close a cycle is rejected with
// domain.ErrDependencyCycle.
func (e *Engine) Register(p *domain.Protocol) error {
	if p == nil || p.Name == "" {
		return fmt.Errorf("protocol name cannot be empty")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if cycle := e.findCycle(p); len(cycle) > 0 {
		return fmt.Errorf("registering %s: %w: %s", p.Name, domain.ErrDependencyCycle, strings.Join(cycle, " -> "))
	}

	if _, exists := e.protocols[p.Name]; !exists {
		e.order = append(e.order, p.Name)
	}
	e.protocols[p.Name] = p
	return nil
}

// findCycle walks path dependencies from p as if it were registered and
// returns the first cycle found. Traversal is deterministic: declaration
// order for p's own edges, registered edges as declared.
func (e *Engine) findCycle(p *domain.Protocol) []string {
	deps := func(name string) []string {
		if name == p.Name {
			return p.PathDeps()
		}
		if reg, ok := e.protocols[name]; ok {
			return reg.PathDeps()
		}
		return nil
	}

	var path []string
	onPath := map[string]bool{}
	visited := map[string]bool{}

	var walk func(name string) []string
	walk = func(name string) []string {
		if onPath[name] {
			// Close the loop for the error message.
			for i, n := range path {
				if n == name {
					return append(append([]string{}, path[i:]...), name)
				}
			}
			return []string{name, name}
		}
		if visited[name] {
			return nil
		}
		visited[name] = true
		onPath[name] = true
		path = append(path, name)
		for _, dep := range deps(name) {
			if cycle := walk(dep); cycle != nil {
				return cycle
			}
		}
		path = path[:len(path)-1]
		onPath[name] = false
		return nil
	}

	return walk(p.Name)
}

// Get returns a registered protocol.
func (e *Engine) Get(name string) (*domain.Protocol, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.protocols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProtocolNotFound, name)
	}
	return p, nil
}

// List returns registered protocol names in registration order.
func (e *Engine) List() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string{}, e.order...)
}

// Execute runs a protocol with full dependency and gate checking.
func (e *Engine) Execute(ctx context.Context, name string, ec domain.ExecContext) domain.ExecResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.protocols[name]
	if !ok {
		return e.finish(name, domain.ExecResult{
			Status:  "error",
			Message: fmt.Sprintf("Protocol %s not found", name),
		})
	}

	if unsatisfied := e.unsatisfiedDeps(p); len(unsatisfied) > 0 {
		return e.finish(name, domain.ExecResult{
			Status:   "dependency_failure",
			Message:  fmt.Sprintf("Unsatisfied dependencies: %s", strings.Join(unsatisfied, ", ")),
			Required: unsatisfied,
		})
	}

	if ok, reason := CheckGate(p.Gate, ec); !ok {
		p.Status = domain.StatusNoGo
		return e.finish(name, domain.ExecResult{
			Status:      "no_go",
			Message:     reason,
			Suggestions: suggestions(ec),
		})
	}

	p.Status = domain.StatusInProgress
	var steps []domain.StepRecord
	for i, step := range p.Steps {
		select {
		case <-ctx.Done():
			p.Status = domain.StatusFailed
			return e.finish(name, domain.ExecResult{
				Status:  "failed",
				Message: fmt.Sprintf("Protocol %s interrupted: %v", name, ctx.Err()),
				Steps:   steps,
			})
		default:
		}

		record := domain.StepRecord{Index: i, Name: step, Timestamp: time.Now()}
		p.ExecutionLog = append(p.ExecutionLog, record)
		p.CurrentStep = i + 1
		steps = append(steps, record)

		e.logger.Debug("protocol step", "protocol", name, "step", i, "name", step)
	}

	p.Status = domain.StatusCompleted
	return e.finish(name, domain.ExecResult{
		Status:  "completed",
		Message: fmt.Sprintf("Protocol %s completed successfully", name),
		Steps:   steps,
	})
}

func (e *Engine) finish(name string, res domain.ExecResult) domain.ExecResult {
	metrics.ProtocolExecutions.WithLabelValues(name, res.Status).Inc()
	e.logger.Info("protocol execution", "protocol", name, "status", res.Status)
	return res
}

// unsatisfiedDeps returns the path dependencies that have not completed,
// in declaration order then by name.
func (e *Engine) unsatisfiedDeps(p *domain.Protocol) []string {
	var unsatisfied []string
	seen := map[string]bool{}
	for _, depName := range p.PathDeps() {
		if seen[depName] {
			continue
		}
		seen[depName] = true
		dep, ok := e.protocols[depName]
		if !ok {
			continue
		}
		if dep.Status != domain.StatusCompleted {
			unsatisfied = append(unsatisfied, depName)
		}
	}
	return unsatisfied
}

// CheckGate evaluates a protocol's go/no-go criteria against the
// execution context.
func CheckGate(gate domain.Gate, ec domain.ExecContext) (bool, string) {
	if gate[domain.GateRequiresPlanning] && !ec.PlanningCompleted {
		return false, "No planning completed - NO GO"
	}
	if gate[domain.GateRequiresPreparation] && !ec.PreparationCompleted {
		return false, "No preparation completed - NO GO"
	}
	if gate[domain.GateRequiresIntel] && !ec.IntelAvailable {
		return false, "No intel available - NO GO"
	}
	if gate[domain.GateRequiresClearObjective] && !ec.ClearObjective {
		return false, "No clear objective defined - NO GO"
	}
	if gate[domain.GateRequiresEdgeHedgeLeverage] {
		if !ec.EdgeIdentified || !ec.HedgeInPlace || !ec.LeverageCalculated {
			return false, fmt.Sprintf("Missing: Edge(%t), Hedge(%t), Leverage(%t) - NO GO",
				ec.EdgeIdentified, ec.HedgeInPlace, ec.LeverageCalculated)
		}
	}
	return true, "All criteria met - GO"
}

func suggestions(ec domain.ExecContext) []string {
	var s []string
	if !ec.PlanningCompleted {
		s = append(s, "Execute planning protocol first")
	}
	if !ec.PreparationCompleted {
		s = append(s, "Execute preparation protocol first")
	}
	if !ec.IntelAvailable {
		s = append(s, "Gather intel before proceeding")
	}
	return s
}

// OptimalWorkflow suggests an ordered protocol sequence for a goal.
func (e *Engine) OptimalWorkflow(goal string) []string {
	g := strings.ToLower(goal)
	switch {
	case strings.Contains(g, "research"):
		return []string{"intel_gathering", "research_protocol", "analysis_protocol"}
	case strings.Contains(g, "plan"):
		return []string{"intel_gathering", "planning_protocol", "preparation_protocol"}
	case strings.Contains(g, "execute"):
		return []string{"planning_protocol", "preparation_protocol", "execution_protocol"}
	default:
		return []string{"intel_gathering", "planning_protocol", "preparation_protocol", "execution_protocol"}
	}
}

func (e *Engine) seedCoreProtocols() {
	planning := domain.NewProtocol("planning_protocol",
		[]string{
			"situation_analysis",
			"goal_definition",
			"option_generation",
			"option_evaluation",
			"strategic_selection",
			"tactical_planning",
		},
		domain.Gate{
			domain.GateRequiresIntel:          true,
			domain.GateRequiresClearObjective: true,
		})

	preparation := domain.NewProtocol("preparation_protocol",
		[]string{
			"resource_identification",
			"resource_acquisition",
			"skill_development",
			"environment_setup",
			"contingency_planning",
		},
		domain.Gate{
			domain.GateRequiresPlanning: true,
		})

	execution := domain.NewProtocol("execution_protocol",
		[]string{
			"pre_execution_check",
			"execution_setup",
			"active_execution",
			"monitoring_adjustment",
			"completion_review",
		},
		domain.Gate{
			domain.GateRequiresPlanning:          true,
			domain.GateRequiresPreparation:       true,
			domain.GateRequiresEdgeHedgeLeverage: true,
		})

	preparation.AddDependency("planning_protocol", domain.DepPath)
	execution.AddDependency("planning_protocol", domain.DepPath)
	execution.AddDependency("preparation_protocol", domain.DepPath)

	for _, p := range []*domain.Protocol{planning, preparation, execution} {
		// Core protocols are acyclic by construction.
		_ = e.Register(p)
	}
}
