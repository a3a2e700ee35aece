package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	// HTTPRequestsTotal tracks HTTP requests by method, route and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks HTTP request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)
)

// Registry Metrics
var (
	// RegistryBuildsTotal tracks registry builds by variant and status
	RegistryBuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_registry_builds_total",
			Help: "Total app registry builds by variant (plain/credentials/category) and status",
		},
		[]string{"variant", "status"},
	)
)

// Login Metrics
var (
	// LoginAttemptsTotal tracks login submissions by outcome
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total login submissions by outcome (success/rejected/second_factor/error)",
		},
		[]string{"outcome"},
	)
)
