package intel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/lifeos/internal/docmanager"
	"github.com/aretw0/lifeos/internal/logging"
	"github.com/aretw0/lifeos/internal/metrics"
	"github.com/aretw0/lifeos/pkg/domain"
)

// worldviewThreshold is the significance above which a frontier change
// triggers a worldview document update.
const worldviewThreshold = 0.8

// WorldviewDocument is the living document the branch evolves with new
// intelligence.
const WorldviewDocument = "Worldview Framework"

const executiveSummary = `EXECUTIVE INTELLIGENCE SUMMARY:

THREAT LEVEL: AMBER - Multiple systemic risks accelerating
OPPORTUNITY LEVEL: HIGH - Major asymmetric opportunities available
WORLDVIEW STATUS: STABLE - Minor updates required

KEY DEVELOPMENTS:
- AI advancement creating unprecedented skill arbitrage
- Traditional employment model showing increased fragility
- Geographic arbitrage opportunities expanding

IMMEDIATE ACTIONS REQUIRED:
- Accelerate AI skill development
- Diversify income sources
- Build antifragile positioning`

// BranchStatus summarizes the intel branch's state.
type BranchStatus struct {
	BriefingsGenerated int    `json:"briefings_generated"`
	LastBriefing       string `json:"last_briefing"`
	ConfidenceLevel    float64 `json:"confidence_level"`
}

// Branch is the intelligence branch: it scans frontiers, hunts
// asymmetric opportunities, and keeps the worldview current.
type Branch struct {
	detector *FrontierDetector
	docs     *docmanager.Manager
	logger   *slog.Logger

	mu        sync.Mutex
	briefings []*domain.Briefing
}

// NewBranch creates the intel branch. docs may be nil for a disconnected
// branch; worldview updates are then proposed but not applied.
func NewBranch(detector *FrontierDetector, docs *docmanager.Manager, logger *slog.Logger) *Branch {
	if logger == nil {
		logger = logging.NewNop()
	}
	if detector == nil {
		detector = NewFrontierDetector(WithLogger(logger))
	}
	return &Branch{
		detector: detector,
		docs:     docs,
		logger:   logger,
	}
}

// Detector exposes the frontier detector.
func (b *Branch) Detector() *FrontierDetector {
	return b.detector
}

// DailyBriefing assembles the full intelligence briefing and applies any
// worldview updates through the document manager.
func (b *Branch) DailyBriefing(ctx context.Context) *domain.Briefing {
	b.logger.Info("generating daily intelligence briefing")

	report := b.detector.Scan(ctx)
	updates := worldviewUpdates(report)

	now := time.Now()
	briefing := &domain.Briefing{
		ID:               uuid.NewString(),
		Date:             now.Format("2006-01-02"),
		Timestamp:        now,
		ExecutiveSummary: executiveSummary,
		Frontier:         report,
		Opportunities:    huntOpportunities(),
		Fragilities:      detectFragilities(),
		Signals:          blackSwanSignals(),
		WorldviewUpdates: updates,
		PriorityActions:  priorityActions(),
		Confidence: map[string]float64{
			"frontier_detection":       0.8,
			"asymmetric_opportunities": 0.9,
			"fragility_analysis":       0.85,
			"black_swan_monitoring":    0.6,
			"overall_assessment":       0.8,
		},
	}

	b.applyWorldviewUpdates(ctx, updates)

	b.mu.Lock()
	b.briefings = append(b.briefings, briefing)
	b.mu.Unlock()
	metrics.Briefings.Inc()
	b.logger.Info("daily briefing complete",
		"opportunities", len(briefing.Opportunities),
		"worldview_updates", len(updates),
	)

	return briefing
}

// worldviewUpdates proposes document evolutions for highly significant
// frontier changes.
func worldviewUpdates(report *domain.FrontierReport) []domain.WorldviewUpdate {
	var updates []domain.WorldviewUpdate
	for _, change := range report.Significant {
		if change.Significance > worldviewThreshold {
			updates = append(updates, domain.WorldviewUpdate{
				Document:  WorldviewDocument,
				Insight:   change.Description,
				Reasoning: fmt.Sprintf("Significant frontier change with %.2f significance", change.Significance),
				Source:    "frontier_detection",
			})
		}
	}
	return updates
}

// applyWorldviewUpdates evolves the worldview document, creating it on
// first use.
func (b *Branch) applyWorldviewUpdates(ctx context.Context, updates []domain.WorldviewUpdate) {
	if b.docs == nil || len(updates) == 0 {
		return
	}

	for _, update := range updates {
		_, err := b.docs.AddInsight(ctx, update.Document, update.Insight, update.Source)
		if errors.Is(err, domain.ErrDocumentNotFound) {
			if _, cerr := b.docs.Create(ctx, update.Document, domain.DocTypeWorldview, "# "+update.Document); cerr == nil {
				_, err = b.docs.AddInsight(ctx, update.Document, update.Insight, update.Source)
			}
		}
		if err != nil {
			b.logger.Warn("failed to apply worldview update", "document", update.Document, "err", err)
			continue
		}
		metrics.DocumentEvolutions.Inc()
		b.logger.Info("worldview updated", "document", update.Document)
	}
}

// Status reports the branch's state.
func (b *Branch) Status() BranchStatus {
	b.mu.Lock()
	defer b.mu.Unlock()

	status := BranchStatus{
		BriefingsGenerated: len(b.briefings),
		LastBriefing:       "Never",
		ConfidenceLevel:    0.8,
	}
	if len(b.briefings) > 0 {
		status.LastBriefing = b.briefings[len(b.briefings)-1].Date
	}
	return status
}

func huntOpportunities() []domain.Opportunity {
	return []domain.Opportunity{
		{
			ID:             "ai_skill_arbitrage",
			Type:           "skill_arbitrage",
			Description:    "AI-human collaboration skills commanding massive premium",
			AsymmetryRatio: "15:1",
			Upside:         "10x productivity gains, premium positioning",
			Downside:       "Learning time investment (100-200 hours)",
			Edge:           "Most people avoiding due to complexity fear",
			Hedge:          "Skills remain valuable even if specific tools change",
			Leverage:       "Compound effect across all work domains",
			TimeWindow:     "6-18 months",
			Confidence:     0.9,
			Action:         "Immediate skill development program",
		},
		{
			ID:             "geographic_arbitrage",
			Type:           "location_arbitrage",
			Description:    "Remote work enabling cost/quality arbitrage",
			AsymmetryRatio: "5:1",
			Upside:         "50% cost reduction, quality of life improvement",
			Downside:       "Logistics complexity, social adjustment",
			Edge:           "Many still anchored to expensive locations",
			Hedge:          "Maintain flexibility to relocate",
			Leverage:       "Applies to all living expenses",
			TimeWindow:     "Immediate",
			Confidence:     0.8,
			Action:         "Research target locations and test logistics",
		},
		{
			ID:             "network_effect_content",
			Type:           "network_arbitrage",
			Description:    "Content creation with viral potential undervalued",
			AsymmetryRatio: "100:1",
			Upside:         "Massive audience, influence, monetization",
			Downside:       "Time investment, potential failure",
			Edge:           "Most create without distribution strategy",
			Hedge:          "Build owned audience relationships",
			Leverage:       "Network effects compound exponentially",
			TimeWindow:     "12-36 months",
			Confidence:     0.6,
			Action:         "Develop content strategy with distribution focus",
		},
	}
}

func detectFragilities() []domain.Fragility {
	return []domain.Fragility{
		{
			ID:            "employment_automation",
			System:        "traditional_employment_model",
			Type:          "technological_obsolescence",
			StressFactors: []string{"AI advancement", "automation adoption", "skill-job mismatch"},
			HedgeStrategy: "Develop multiple income streams, focus on human-AI collaboration",
			Urgency:       "high",
		},
		{
			ID:            "platform_dependence",
			System:        "social_media_platforms",
			Type:          "regulatory_algorithmic_risk",
			StressFactors: []string{"Regulatory changes", "Algorithm updates", "Policy shifts"},
			HedgeStrategy: "Build direct audience relationships, own distribution",
			Urgency:       "medium",
		},
		{
			ID:            "fiat_currency_system",
			System:        "monetary_system",
			Type:          "confidence_based_system",
			StressFactors: []string{"Inflation", "Debt levels", "Geopolitical tensions"},
			HedgeStrategy: "Diversify across asset classes, maintain optionality",
			Urgency:       "medium",
		},
	}
}

func blackSwanSignals() []domain.Signal {
	return []domain.Signal{
		{
			ID:          "ai_capability_jump",
			Description: "Sudden breakthrough in AI capabilities",
			Probability: "low",
			Impact:      "extreme",
			Indicators: []string{
				"Research papers showing unexpected results",
				"Quiet corporate AI acquisitions",
				"Unusual compute resource allocation",
			},
			Preparation: "Maintain AI skill development, build antifragile positioning",
		},
		{
			ID:          "geopolitical_realignment",
			Description: "Major shift in global power structure",
			Probability: "medium",
			Impact:      "high",
			Indicators: []string{
				"Trade relationship changes",
				"Military alliance shifts",
				"Currency adoption patterns",
			},
			Preparation: "Geographic diversification, supply chain antifragility",
		},
	}
}

func priorityActions() []domain.PriorityAction {
	return []domain.PriorityAction{
		{
			Priority:  1,
			Action:    "Begin AI skill development program",
			Rationale: "Highest asymmetry opportunity with closing window",
			Timeline:  "Immediate - 60 days",
		},
		{
			Priority:  2,
			Action:    "Research geographic arbitrage options",
			Rationale: "High asymmetry, low downside",
			Timeline:  "30 days research, 90 days execution",
		},
		{
			Priority:  3,
			Action:    "Build direct audience relationships",
			Rationale: "Hedge against platform fragility",
			Timeline:  "6-12 months",
		},
	}
}
