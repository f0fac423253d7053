// Package metrics holds the prometheus collectors shared across the
// application. Collectors are registered on the default registerer and served
// by the HTTP server's metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// SourceLookupDuration tracks how long each provider lookup took, broken
	// down by source name and outcome (ok, error, timeout).
	SourceLookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "guardian",
		Subsystem: "exposure",
		Name:      "source_lookup_duration_seconds",
		Help:      "Duration of source client lookups per aggregation run.",
		Buckets:   DefaultBuckets,
	}, []string{"source", "outcome"})

	// AggregationsTotal counts finished aggregation runs by combined risk level.
	AggregationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "guardian",
		Subsystem: "exposure",
		Name:      "aggregations_total",
		Help:      "Completed exposure aggregation runs by combined risk level.",
	}, []string{"risk_level"})

	// ReportsSaved counts reports persisted by kind.
	ReportsSaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "guardian",
		Subsystem: "reports",
		Name:      "saved_total",
		Help:      "Reports persisted to the store by kind.",
	}, []string{"kind"})
)

// Outcome labels for SourceLookupDuration.
const (
	OutcomeOK      = "ok"
	OutcomeError   = "error"
	OutcomeTimeout = "timeout"
)
