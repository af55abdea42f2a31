// Package intel implements the intelligence branch: frontier scanning,
// asymmetric opportunity hunting, fragility detection, and the daily
// briefing that feeds the rest of the system.
package intel

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifeos/internal/logging"
	"github.com/aretw0/lifeos/internal/metrics"
	"github.com/aretw0/lifeos/pkg/domain"
	"github.com/aretw0/lifeos/pkg/ports"
)

// significanceThreshold marks a frontier update as significant.
const significanceThreshold = 0.7

// FrontierDetector scans the five frontier domains and assembles the
// aggregated report.
type FrontierDetector struct {
	scanners map[string]ports.FrontierScanner
	logger   *slog.Logger

	mu      sync.Mutex
	history []*domain.FrontierReport
}

// Option configures the FrontierDetector.
type Option func(*FrontierDetector)

// WithLogger configures a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *FrontierDetector) {
		d.logger = logger
	}
}

// WithScanner replaces the scanner for one domain.
func WithScanner(s ports.FrontierScanner) Option {
	return func(d *FrontierDetector) {
		d.scanners[s.Domain()] = s
	}
}

// NewFrontierDetector creates a detector with the static scanners for
// all five domains.
func NewFrontierDetector(opts ...Option) *FrontierDetector {
	d := &FrontierDetector{
		scanners: map[string]ports.FrontierScanner{
			domain.FrontierTechnology: technologyScanner{},
			domain.FrontierPolitics:   politicsScanner{},
			domain.FrontierBusiness:   businessScanner{},
			domain.FrontierSocial:     socialScanner{},
			domain.FrontierEconomics:  economicsScanner{},
		},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Scan runs every domain scanner and aggregates the report. A failing
// scanner contributes a single degraded update; the report always carries
// all five domain keys.
func (d *FrontierDetector) Scan(ctx context.Context) *domain.FrontierReport {
	now := time.Now()
	report := &domain.FrontierReport{
		ScanDate:  now.Format("2006-01-02"),
		Timestamp: now,
		Updates:   make(map[string][]domain.FrontierUpdate, len(domain.FrontierDomains)),
	}

	for _, name := range domain.FrontierDomains {
		scanner, ok := d.scanners[name]
		if !ok {
			report.Updates[name] = nil
			continue
		}

		updates, err := scanner.Scan(ctx)
		if err != nil {
			d.logger.Warn("frontier scan failed", "domain", name, "err", err)
			metrics.FrontierScans.WithLabelValues(name, "error").Inc()
			updates = []domain.FrontierUpdate{{
				Area:        name,
				Description: fmt.Sprintf("scan failed: %v", err),
			}}
		} else {
			metrics.FrontierScans.WithLabelValues(name, "ok").Inc()
		}
		report.Updates[name] = updates

		for _, u := range updates {
			if u.Significance > significanceThreshold {
				report.Significant = append(report.Significant, u)
			}
		}
	}

	report.Implications = analyzeImplications(report.Significant)
	report.Recommendations = recommend(report.Implications)

	d.mu.Lock()
	d.history = append(d.history, report)
	d.mu.Unlock()
	d.logger.Info("frontier scan complete", "significant_changes", len(report.Significant))

	return report
}

// History returns past reports, oldest first.
func (d *FrontierDetector) History() []*domain.FrontierReport {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*domain.FrontierReport{}, d.history...)
}

// analyzeImplications derives asymmetric opportunity and threat
// implications from significant changes.
func analyzeImplications(significant []domain.FrontierUpdate) []domain.Implication {
	var implications []domain.Implication

	for _, change := range significant {
		desc := strings.ToUpper(change.Description)

		if strings.Contains(desc, "AI") {
			implications = append(implications, domain.Implication{
				Type:           "skill_arbitrage_opportunity",
				Description:    "AI advancement creating skill premium for human-AI collaboration",
				AsymmetryRatio: "10:1",
				TimeWindow:     "6-18 months",
				Action:         "Develop AI workflow expertise immediately",
			})
		}

		if strings.Contains(desc, "REGULATION") || strings.Contains(desc, "REGULATORY") {
			implications = append(implications, domain.Implication{
				Type:           "regulatory_arbitrage",
				Description:    "Regulatory changes creating compliance gaps",
				AsymmetryRatio: "3:1",
				TimeWindow:     "12-24 months",
				Action:         "Position for regulatory compliance advantage",
			})
		}
	}

	return implications
}

// recommend produces deduplicated strategic recommendations, sorted for
// stable output.
func recommend(implications []domain.Implication) []string {
	seen := map[string]bool{}
	for _, imp := range implications {
		switch imp.Type {
		case "skill_arbitrage_opportunity":
			seen["Immediately begin AI skill development program"] = true
			seen["Network with AI practitioners and early adopters"] = true
		case "regulatory_arbitrage":
			seen["Research regulatory landscape in target domains"] = true
			seen["Build compliance capabilities before competitors"] = true
		}
	}

	recommendations := make([]string, 0, len(seen))
	for r := range seen {
		recommendations = append(recommendations, r)
	}
	sort.Strings(recommendations)
	return recommendations
}
