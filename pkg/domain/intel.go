package domain

import "time"

// Frontier domain names. A frontier report always carries all five keys,
// also when an individual scan fails.
const (
	FrontierTechnology = "technology"
	FrontierPolitics   = "politics"
	FrontierBusiness   = "business"
	FrontierSocial     = "social"
	FrontierEconomics  = "economics"
)

// FrontierDomains lists the scanned domains in report order.
var FrontierDomains = []string{
	FrontierTechnology,
	FrontierPolitics,
	FrontierBusiness,
	FrontierSocial,
	FrontierEconomics,
}

// FrontierUpdate is one observed change at a frontier.
type FrontierUpdate struct {
	Area         string   `json:"area"`
	Description  string   `json:"description"`
	Significance float64  `json:"significance"` // 0.0–1.0
	Timeline     string   `json:"impact_timeline,omitempty"`
	Implications []string `json:"implications,omitempty"`
}

// Implication is an asymmetric opportunity or threat derived from
// significant frontier changes.
type Implication struct {
	Type           string `json:"type"`
	Description    string `json:"description"`
	AsymmetryRatio string `json:"asymmetry_ratio,omitempty"`
	TimeWindow     string `json:"time_window,omitempty"`
	Action         string `json:"action_required,omitempty"`
}

// FrontierReport is the result of a full scan across all frontiers.
type FrontierReport struct {
	ScanDate        string                      `json:"scan_date"`
	Timestamp       time.Time                   `json:"timestamp"`
	Updates         map[string][]FrontierUpdate `json:"frontier_updates"`
	Significant     []FrontierUpdate            `json:"significant_changes"`
	Implications    []Implication               `json:"asymmetric_implications"`
	Recommendations []string                    `json:"strategic_recommendations"`
}

// Signal is an early Black Swan indicator under watch.
type Signal struct {
	ID          string   `json:"signal_id"`
	Description string   `json:"description"`
	Probability string   `json:"probability"`
	Impact      string   `json:"impact"`
	Indicators  []string `json:"early_indicators,omitempty"`
	Preparation string   `json:"preparation,omitempty"`
}

// WorldviewUpdate proposes evolving a worldview document with new intel.
type WorldviewUpdate struct {
	Document  string `json:"document"`
	Insight   string `json:"new_insight"`
	Reasoning string `json:"reasoning"`
	Source    string `json:"source"`
}

// PriorityAction is a ranked action item from a briefing.
type PriorityAction struct {
	Priority  int    `json:"priority"`
	Action    string `json:"action"`
	Rationale string `json:"rationale,omitempty"`
	Timeline  string `json:"timeline,omitempty"`
}

// Briefing is the daily intelligence briefing produced by the intel branch.
type Briefing struct {
	ID               string             `json:"briefing_id"`
	Date             string             `json:"briefing_date"`
	Timestamp        time.Time          `json:"timestamp"`
	ExecutiveSummary string             `json:"executive_summary"`
	Frontier         *FrontierReport    `json:"frontier_intelligence"`
	Opportunities    []Opportunity      `json:"asymmetric_opportunities"`
	Fragilities      []Fragility        `json:"fragility_warnings"`
	Signals          []Signal           `json:"black_swan_signals"`
	WorldviewUpdates []WorldviewUpdate  `json:"worldview_updates"`
	PriorityActions  []PriorityAction   `json:"priority_actions"`
	Confidence       map[string]float64 `json:"confidence_assessment"`
}
