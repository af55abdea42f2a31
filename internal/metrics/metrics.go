// Package metrics exposes the system's prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ProtocolExecutions counts protocol runs by final status.
	ProtocolExecutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifeos_protocol_executions_total",
		Help: "Protocol executions by protocol name and outcome status.",
	}, []string{"protocol", "status"})

	// Verdicts counts go/no-go evaluations by decision.
	Verdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifeos_go_no_go_verdicts_total",
		Help: "Go/no-go task evaluations by decision.",
	}, []string{"decision"})

	// DocumentEvolutions counts document version bumps.
	DocumentEvolutions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifeos_document_evolutions_total",
		Help: "Living document updates that produced a new version.",
	})

	// FrontierScans counts per-domain frontier scans by result.
	FrontierScans = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lifeos_frontier_scans_total",
		Help: "Frontier scans by domain and result.",
	}, []string{"domain", "result"})

	// Briefings counts generated intelligence briefings.
	Briefings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lifeos_briefings_total",
		Help: "Daily intelligence briefings generated.",
	})
)

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
