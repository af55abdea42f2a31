// Package executive implements the executive branch: turning strategic
// plans into operational tasks, gating them through the go/no-go
// checker, and coordinating their execution.
package executive

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifeos/internal/decision"
	"github.com/aretw0/lifeos/internal/logging"
	"github.com/aretw0/lifeos/pkg/domain"
)

// Status summarizes the executive branch's state.
type Status struct {
	ActiveOperations int `json:"active_operations"`
	PendingTasks     int `json:"pending_tasks"`
	CompletedTasks   int `json:"completed_tasks"`
	ExecutionReports int `json:"execution_reports"`
}

// Report is one coordination cycle's output.
type Report struct {
	Timestamp       time.Time      `json:"timestamp"`
	OperationStatus map[string]any `json:"operation_status"`
	ResourceStatus  map[string]any `json:"resource_status"`
	TaskProgress    map[string]any `json:"task_progress"`
	Bottlenecks     []string       `json:"bottlenecks_identified"`
	NextActions     []string       `json:"next_actions"`
}

// EmergencyResult reports an emergency response execution.
type EmergencyResult struct {
	ActionsTaken []string `json:"immediate_actions_taken"`
	Status       string   `json:"operations_status"`
	Reallocation string   `json:"resource_reallocation"`
}

// Branch is the execution engine. Safe for concurrent use.
type Branch struct {
	checker *decision.Checker
	logger  *slog.Logger

	mu         sync.Mutex
	operations []domain.Operation
	pending    []domain.Task
	completed  []domain.Task
	reports    []Report
}

// NewBranch creates the executive branch. A nil checker gets the default
// criteria.
func NewBranch(checker *decision.Checker, logger *slog.Logger) *Branch {
	if logger == nil {
		logger = logging.NewNop()
	}
	if checker == nil {
		checker = decision.NewChecker()
	}
	return &Branch{checker: checker, logger: logger}
}

// ReceiveStrategy converts a strategic plan into an execution plan.
// Every derived task passes through the go/no-go checker; rejected tasks
// stay pending instead of joining an operation.
func (b *Branch) ReceiveStrategy(plan *domain.StrategicPlan) *domain.ExecutionPlan {
	if plan == nil {
		return nil
	}
	b.logger.Info("receiving strategic plan", "priorities", len(plan.Priorities))

	tasks := tasksFromPriorities(plan.Priorities)
	for i := range tasks {
		verdict := b.checker.Evaluate(taskSpec(tasks[i]))
		tasks[i].Approved = verdict.Go
	}

	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Priority < tasks[j].Priority })

	groups := map[string][]domain.Task{}
	var approved []domain.Task
	for _, task := range tasks {
		if !task.Approved {
			b.logger.Warn("task rejected by go/no-go check", "task", task.Name)
			continue
		}
		groups[task.Type] = append(groups[task.Type], task)
		approved = append(approved, task)
	}

	b.mu.Lock()
	now := time.Now()
	for taskType, groupTasks := range groups {
		b.operations = append(b.operations, domain.Operation{
			ID:        fmt.Sprintf("op_%s_%s", taskType, now.Format("20060102_1504")),
			Type:      taskType,
			Tasks:     groupTasks,
			Status:    "active",
			StartedAt: now,
		})
	}
	for _, task := range tasks {
		if !task.Approved {
			b.pending = append(b.pending, task)
		}
	}
	b.mu.Unlock()

	execPlan := &domain.ExecutionPlan{
		TotalTasks:   len(approved),
		Groups:       groups,
		Timeline:     executionTimeline(),
		CriticalPath: criticalPath(),
	}

	b.logger.Info("strategy converted to operational tasks",
		"tasks", len(tasks), "approved", len(approved))
	return execPlan
}

// Coordinate reviews ongoing operations and produces an execution
// report.
func (b *Branch) Coordinate() Report {
	b.mu.Lock()
	defer b.mu.Unlock()

	onTrack, delayed, blocked := 0, 0, 0
	for _, op := range b.operations {
		switch op.Status {
		case "active":
			onTrack++
		case "delayed":
			delayed++
		case "blocked":
			blocked++
		}
	}

	health := "good"
	if float64(delayed) > float64(onTrack)/2 {
		health = "concerning"
	} else if blocked > 0 {
		health = "needs_attention"
	}

	report := Report{
		Timestamp: time.Now(),
		OperationStatus: map[string]any{
			"total_operations":    len(b.operations),
			"operations_on_track": onTrack,
			"operations_delayed":  delayed,
			"operations_blocked":  blocked,
			"overall_health":      health,
		},
		ResourceStatus: map[string]any{
			"time_utilization":    "85%",
			"financial_resources": "adequate",
			"energy_levels":       "good",
		},
		TaskProgress: map[string]any{
			"completed_tasks": len(b.completed),
			"pending_tasks":   len(b.pending),
		},
		Bottlenecks: []string{
			"Limited time for deep work sessions",
			"Task switching reducing efficiency",
		},
		NextActions: []string{
			"Focus 2-hour deep work session on AI course",
			"Reach out to 3 potential network connections",
		},
	}

	b.reports = append(b.reports, report)
	b.logger.Info("execution report generated", "active_operations", len(b.operations))
	return report
}

// Emergency executes the defensive response.
func (b *Branch) Emergency() EmergencyResult {
	b.logger.Warn("executing emergency response")
	return EmergencyResult{
		ActionsTaken: []string{"Capital preservation activated", "Network alerts sent"},
		Status:       "emergency_mode_activated",
		Reallocation: "Focus shifted to defensive measures",
	}
}

// Status reports the branch's state.
func (b *Branch) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Status{
		ActiveOperations: len(b.operations),
		PendingTasks:     len(b.pending),
		CompletedTasks:   len(b.completed),
		ExecutionReports: len(b.reports),
	}
}

// tasksFromPriorities breaks strategic priorities down into concrete
// operational tasks.
func tasksFromPriorities(priorities []domain.ExecutionPriority) []domain.Task {
	var tasks []domain.Task
	for _, p := range priorities {
		switch {
		case strings.Contains(p.Task, "AI collaboration skills"):
			tasks = append(tasks,
				domain.Task{
					ID:              "ai_001",
					Name:            "Complete AI fundamentals course",
					Type:            "learning",
					Priority:        p.Priority,
					Deadline:        deadline(p.Deadline),
					Resources:       []string{"time", "learning_platform"},
					SuccessCriteria: "Course completion certificate",
				},
				domain.Task{
					ID:              "ai_002",
					Name:            "Build first AI-enhanced project",
					Type:            "project",
					Priority:        p.Priority,
					Deadline:        deadline(p.Deadline),
					Resources:       []string{"time", "development_tools"},
					SuccessCriteria: "Working prototype demonstrating AI integration",
				})
		case strings.Contains(p.Task, "network connections"):
			tasks = append(tasks,
				domain.Task{
					ID:              "net_001",
					Name:            "Identify 20 high-value potential connections",
					Type:            "research",
					Priority:        p.Priority,
					Deadline:        deadline(p.Deadline),
					Resources:       []string{"time", "research_tools"},
					SuccessCriteria: "List of 20 qualified contacts with connection strategy",
				},
				domain.Task{
					ID:              "net_002",
					Name:            "Execute 10 high-quality connection attempts",
					Type:            "networking",
					Priority:        p.Priority,
					Deadline:        deadline(p.Deadline),
					Resources:       []string{"time", "communication_tools"},
					SuccessCriteria: "10 meaningful conversations initiated",
				})
		}
	}
	return tasks
}

// taskSpec adapts an operational task to the checker's input shape.
func taskSpec(t domain.Task) domain.TaskSpec {
	priority := "medium"
	if t.Priority == 1 {
		priority = "high"
	}
	return domain.TaskSpec{
		Name:            t.Name,
		Priority:        priority,
		Frequency:       "daily",
		SuccessCriteria: map[string]any{"criteria": t.SuccessCriteria},
		Inputs:          t.Resources,
		Outputs:         []string{t.SuccessCriteria},
		AssignedAgent:   "executive_branch",
	}
}

// deadline resolves a relative deadline to a concrete date.
func deadline(rel string) string {
	days := 45
	switch rel {
	case "60 days":
		days = 60
	case "90 days":
		days = 90
	case "120 days":
		days = 120
	}
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func executionTimeline() map[string][]string {
	return map[string][]string{
		"week_1": {"Complete AI fundamentals course", "Identify network targets"},
		"week_2": {"Build first AI project", "Initial network outreach"},
		"week_3": {"Refine AI project", "Follow up network connections"},
		"week_4": {"Demonstrate AI capabilities", "Schedule network meetings"},
	}
}

func criticalPath() []string {
	return []string{
		"Complete AI fundamentals course",
		"Build first AI-enhanced project",
		"Demonstrate capabilities to network",
		"Secure first AI collaboration opportunity",
	}
}
