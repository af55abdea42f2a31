// Package agent implements the reasoning agents: individual agents with
// role-based reasoning and bounded memory, the factory that builds them,
// and the coordinator that runs multi-agent workflows.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifeos/internal/docmanager"
	"github.com/aretw0/lifeos/internal/logging"
	"github.com/aretw0/lifeos/internal/protocol"
	"github.com/aretw0/lifeos/pkg/domain"
)

// memoryLimit bounds the conversation memory per agent.
const memoryLimit = 50

// SimilarExchange pairs a past exchange with its similarity to the
// current query.
type SimilarExchange struct {
	Exchange   domain.Exchange
	Similarity float64
}

// Agent reasons about queries according to its role and instructions.
// Safe for concurrent use.
type Agent struct {
	Name         string
	Role         string
	Instructions string
	Capabilities []string

	mu             sync.Mutex
	memory         []domain.Exchange
	tasksCompleted int
	successRate    float64

	docs      *docmanager.Manager
	protocols *protocol.Engine
	logger    *slog.Logger
}

// New creates an unconnected agent.
func New(name, role, instructions string, capabilities []string) *Agent {
	return &Agent{
		Name:         name,
		Role:         role,
		Instructions: instructions,
		Capabilities: capabilities,
		logger:       logging.NewNop(),
	}
}

// SetLogger replaces the agent's logger.
func (a *Agent) SetLogger(logger *slog.Logger) {
	a.logger = logger
}

// Connect wires the agent to the document manager and protocol engine.
// Connected agents pull matching documents into their reasoning context.
func (a *Agent) Connect(docs *docmanager.Manager, protocols *protocol.Engine) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.docs = docs
	a.protocols = protocols
}

// Connected reports whether the agent has system access.
func (a *Agent) Connected() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.docs != nil
}

// Process reasons through a query and records the exchange in memory.
func (a *Agent) Process(ctx context.Context, query string, ec domain.ExecContext) *domain.AgentResponse {
	a.logger.Debug("processing query", "agent", a.Name, "role", a.Role)

	docs := a.relevantDocuments(ctx, query)

	var resp *domain.AgentResponse
	role := strings.ToLower(a.Role)
	switch {
	case strings.Contains(role, "intel") || strings.Contains(role, "scout"):
		resp = a.intelReasoning(query)
	case strings.Contains(role, "planning") || strings.Contains(role, "strategic"):
		resp = a.planningReasoning(query)
	case strings.Contains(role, "execution"):
		resp = a.executionReasoning(ec)
	case strings.Contains(role, "research"):
		resp = a.researchReasoning(query)
	default:
		resp = a.generalReasoning(query)
	}

	if len(docs) > 0 {
		resp.Reasoning = append(resp.Reasoning,
			fmt.Sprintf("Consulted documents: %s", strings.Join(docs, ", ")))
	}

	a.remember(query, resp)
	return resp
}

// relevantDocuments returns the names of up to three documents matching
// the query, when connected.
func (a *Agent) relevantDocuments(ctx context.Context, query string) []string {
	a.mu.Lock()
	docs := a.docs
	a.mu.Unlock()
	if docs == nil {
		return nil
	}

	matches, err := docs.Search(ctx, query, "")
	if err != nil {
		a.logger.Warn("document search failed", "agent", a.Name, "err", err)
		return nil
	}

	var names []string
	for _, doc := range matches {
		names = append(names, doc.Name)
		if len(names) == 3 {
			break
		}
	}
	return names
}

func containsAny(s string, terms ...string) bool {
	s = strings.ToLower(s)
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// intelReasoning scans the query for opportunity and fragility markers.
func (a *Agent) intelReasoning(query string) *domain.AgentResponse {
	resp := &domain.AgentResponse{
		Agent: a.Name,
		Role:  a.Role,
		Reasoning: []string{
			"Analyzing request for asymmetric opportunities",
			"Checking for fragility indicators",
			"Evaluating convexity potential",
			"Assessing edge/hedge/leverage requirements",
		},
		NextActions: []string{
			"Gather more intel on identified opportunities",
			"Assess risk/reward ratios",
		},
		Confidence: 0.85,
	}

	if containsAny(query, "market", "investment", "opportunity", "bet") {
		resp.Opportunities = append(resp.Opportunities, domain.Opportunity{
			Type:           "market_opportunity",
			Description:    "Potential asymmetric market position identified",
			AsymmetryRatio: "5:1 potential",
			Action:         "Need to verify edge, hedge, and leverage",
		})
	}

	if containsAny(query, "system", "platform", "dependency") {
		resp.Fragilities = append(resp.Fragilities, domain.Fragility{
			Type:          "system_fragility",
			System:        "dependency chain",
			Description:   "Potential dependency risk identified",
			HedgeStrategy: "Develop alternative options and hedges",
		})
	}

	if strings.Contains(a.Instructions, "Hunt optionality") {
		resp.Recommendations = append(resp.Recommendations,
			"Focus on preserving optionality - avoid irreversible decisions")
	}
	if strings.Contains(a.Instructions, "Detect fragility") {
		resp.Recommendations = append(resp.Recommendations,
			"Analyze system dependencies and failure modes")
	}
	if strings.Contains(a.Instructions, "Exploit asymmetry") {
		resp.Recommendations = append(resp.Recommendations,
			"Look for high upside, limited downside opportunities")
	}

	return resp
}

func (a *Agent) planningReasoning(query string) *domain.AgentResponse {
	resp := &domain.AgentResponse{
		Agent: a.Name,
		Role:  a.Role,
		Reasoning: []string{
			"Decomposing request into strategic components",
			"Identifying resource requirements and constraints",
			"Mapping dependencies and critical paths",
			"Evaluating risks and preparing contingencies",
		},
		Breakdown: []string{"Phase 1: Analysis", "Phase 2: Planning", "Phase 3: Execution"},
		Resources: []string{"Time allocation", "Skills needed", "Tools required"},
		RiskAssessment: "Medium complexity, manageable risks",
		Recommendations: []string{
			"Start with intel gathering",
			"Ensure all dependencies mapped",
		},
		Confidence: 0.9,
	}

	a.mu.Lock()
	engine := a.protocols
	a.mu.Unlock()
	if engine != nil {
		resp.RequiredProtocols = engine.OptimalWorkflow(query)
	}

	return resp
}

func (a *Agent) executionReasoning(ec domain.ExecContext) *domain.AgentResponse {
	resp := &domain.AgentResponse{
		Agent:      a.Name,
		Role:       a.Role,
		CanExecute: true,
		Confidence: 0.95,
	}

	if !ec.PlanningCompleted {
		resp.CanExecute = false
		resp.BlockingIssues = append(resp.BlockingIssues, "No planning completed")
	}
	if !ec.PreparationCompleted {
		resp.CanExecute = false
		resp.BlockingIssues = append(resp.BlockingIssues, "No preparation completed")
	}

	if resp.CanExecute {
		resp.Recommendations = []string{"Proceed with execution"}
		resp.ExecutionPlan = []string{"Setup", "Execute", "Monitor", "Adjust"}
	} else {
		resp.Recommendations = []string{"Complete planning first", "Ensure preparation done"}
		resp.Confidence = 0.3
	}

	return resp
}

func (a *Agent) researchReasoning(query string) *domain.AgentResponse {
	return &domain.AgentResponse{
		Agent: a.Name,
		Role:  a.Role,
		Reasoning: []string{
			"Primary source analysis",
			"Cross-referencing multiple perspectives",
			"Identifying knowledge gaps",
		},
		Analysis: fmt.Sprintf("Research findings for: %s", query),
		NextActions: []string{
			"Further investigation areas",
			"Validation experiments needed",
		},
		Confidence: 0.8,
	}
}

func (a *Agent) generalReasoning(query string) *domain.AgentResponse {
	return &domain.AgentResponse{
		Agent:    a.Name,
		Role:     a.Role,
		Analysis: fmt.Sprintf("Processing request: %s", query),
		Recommendations: []string{
			"Analyze request domain",
			"Identify appropriate specialist agent",
		},
		Routing:    "Route to specialized agent if available",
		Confidence: 0.7,
	}
}

// remember appends the exchange, trims memory to the limit, and refreshes
// the success rate.
func (a *Agent) remember(query string, resp *domain.AgentResponse) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.memory = append(a.memory, domain.Exchange{
		Timestamp: time.Now(),
		Query:     query,
		Response:  resp,
		Success:   resp.Confidence > 0.7,
	})
	if len(a.memory) > memoryLimit {
		a.memory = a.memory[len(a.memory)-memoryLimit:]
	}
	a.tasksCompleted++

	successful := 0
	for _, ex := range a.memory {
		if ex.Success {
			successful++
		}
	}
	a.successRate = float64(successful) / float64(len(a.memory))
}

// SimilarExchanges returns up to three past exchanges from the last ten
// whose word overlap with the query exceeds 0.3 (Jaccard), most similar
// first.
func (a *Agent) SimilarExchanges(query string) []SimilarExchange {
	a.mu.Lock()
	defer a.mu.Unlock()

	queryWords := wordSet(query)
	if len(queryWords) == 0 {
		return nil
	}

	recent := a.memory
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}

	var similar []SimilarExchange
	for _, ex := range recent {
		pastWords := wordSet(ex.Query)
		sim := jaccard(queryWords, pastWords)
		if sim > 0.3 {
			similar = append(similar, SimilarExchange{Exchange: ex, Similarity: sim})
		}
	}

	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].Similarity > similar[j].Similarity
	})
	if len(similar) > 3 {
		similar = similar[:3]
	}
	return similar
}

func wordSet(s string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// Status reports the agent's state and performance.
func (a *Agent) Status() domain.AgentStatus {
	a.mu.Lock()
	defer a.mu.Unlock()

	return domain.AgentStatus{
		Name:           a.Name,
		Role:           a.Role,
		TasksCompleted: a.tasksCompleted,
		SuccessRate:    a.successRate,
		MemorySize:     len(a.memory),
		Capabilities:   append([]string{}, a.Capabilities...),
		Connected:      a.docs != nil,
	}
}
