// Package metrics exposes the Prometheus collectors used by the HTTP layer
// and the engagement tracker. Served on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests.
	// Labels: method, route (gin FullPath, "unmatched" for 404), status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sofa_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures handler latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sofa_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	// EngagementTransitions counts favorite / watch-progress operations.
	// Labels:
	//   - action: favorite, unfavorite, start, pause, resume, stop
	//   - outcome: applied, noop, error
	EngagementTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sofa_engagement_transitions_total",
			Help: "Total number of engagement operations by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	// LoginAttempts counts POST /login outcomes: success, failure, throttled
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sofa_login_attempts_total",
			Help: "Total number of login attempts by outcome",
		},
		[]string{"outcome"},
	)
)
