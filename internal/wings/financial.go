package wings

import (
	"context"
	"sync"

	"github.com/aretw0/lifeos/pkg/domain"
)

// Financial manages capital allocation and wealth building with a
// barbell posture.
type Financial struct {
	mu      sync.Mutex
	reports int
}

// NewFinancial creates the financial wing.
func NewFinancial() *Financial { return &Financial{} }

func (f *Financial) Name() string { return "financial" }

func (f *Financial) Role() string { return "Chief Financial Officer" }

// Check monitors the financial position: cash flow, investments,
// expense optimizations, income diversification, and risks.
func (f *Financial) Check(ctx context.Context) domain.WingReport {
	f.mu.Lock()
	f.reports++
	f.mu.Unlock()

	sections := map[string]any{
		"cash_flow": map[string]any{
			"monthly_surplus":       "$1,000",
			"trend":                 "improving",
			"runway":                "6 months",
			"emergency_fund_status": "adequate",
			"cash_flow_stability":   "medium",
		},
		"investments": map[string]any{
			"total_portfolio_value": "$10,000",
			"monthly_return":        "2.5%",
			"diversification_score": "good",
			"risk_adjusted_return":  "positive",
			"barbell_allocation": map[string]string{
				"safe_assets":           "70%",
				"high_risk_high_reward": "20%",
				"speculation":           "10%",
			},
		},
		"expense_optimizations": []map[string]any{
			{
				"category":          "subscriptions",
				"potential_savings": "$200/month",
				"effort_required":   "low",
				"action":            "Cancel unused subscriptions",
			},
			{
				"category":          "housing",
				"potential_savings": "$500/month",
				"effort_required":   "high",
				"action":            "Consider geographic arbitrage",
			},
		},
		"income_diversification": map[string]any{
			"primary_income_dependency":  "85%",
			"alternative_income_streams": 2,
			"passive_income_ratio":       "15%",
			"income_fragility":           "high",
			"diversification_target":     "Add 2 more income streams",
		},
		"financial_risks": []map[string]any{
			{
				"risk_type":   "single_income_dependency",
				"severity":    "high",
				"probability": "medium",
				"mitigation":  "Develop multiple income streams",
			},
			{
				"risk_type":   "inflation_exposure",
				"severity":    "medium",
				"probability": "high",
				"mitigation":  "Increase hard asset allocation",
			},
		},
	}

	actions := []string{
		"Increase emergency fund to 8 months expenses",
		"Develop second income stream",
		"Optimize tax strategy for new income",
	}

	return newReport(f.Name(), sections, actions)
}

func (f *Financial) Status() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return map[string]any{
		"financial_health":       "improving",
		"cash_position":          "adequate",
		"investment_performance": "positive",
		"income_diversification": "needs_improvement",
		"expense_optimization":   "ongoing",
		"reports_generated":      f.reports,
	}
}
