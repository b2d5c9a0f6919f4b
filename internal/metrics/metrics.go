// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all vaultpeek metrics.
const Namespace = "vaultpeek"

var (
	// HTTPRequestsTotal counts served HTTP requests by path and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests served, by path and status code.",
	}, []string{"path", "status"})

	// HTTPRequestDuration observes request latency by path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds, by path.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path"})

	// DatabasePingsTotal counts health-probe ping attempts by outcome
	// ("connected" or "disconnected").
	DatabasePingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "database",
		Name:      "pings_total",
		Help:      "Database health probe attempts, by outcome.",
	}, []string{"outcome"})
)
