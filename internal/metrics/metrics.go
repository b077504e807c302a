package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the portal backend
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Workflow Metrics
	SignupRequestsTotal      prometheus.CounterVec
	WorkflowTransitionsTotal prometheus.CounterVec
	PendingSignupRequests    prometheus.Gauge
	AllowlistSize            prometheus.Gauge

	// Auth Metrics
	AuthAttemptsTotal       prometheus.CounterVec
	AdminVerificationsTotal prometheus.CounterVec
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portal_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "portal_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		SignupRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_signup_requests_total",
				Help: "Access requests submitted, by outcome (created, duplicate, invalid)",
			},
			[]string{"outcome"},
		),
		WorkflowTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_workflow_transitions_total",
				Help: "Signup request transitions attempted, by transition and outcome",
			},
			[]string{"transition", "outcome"},
		),
		PendingSignupRequests: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "portal_pending_signup_requests",
				Help: "Signup requests currently awaiting review",
			},
		),
		AllowlistSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "portal_allowlist_size",
				Help: "Emails currently authorized to self-register",
			},
		),

		AuthAttemptsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_auth_attempts_total",
				Help: "Authentication attempts, by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		AdminVerificationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portal_admin_verifications_total",
				Help: "Admin verifications performed, by verdict",
			},
			[]string{"verdict"},
		),
	}
}
