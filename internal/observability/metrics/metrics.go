package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "unihaven_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "unihaven_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "unihaven_login_attempts_total",
		Help: "Count of login attempts by result",
	}, []string{"result"})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "unihaven_active_sessions",
		Help: "Number of live sessions (logical state)",
	})

	listingTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "unihaven_listing_transitions_total",
		Help: "Count of listing status transitions by target status",
	}, []string{"status"})

	reportEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "unihaven_report_events_total",
		Help: "Count of report submissions and status changes",
	}, []string{"status"})

	sessionSweeps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "unihaven_session_sweeps_total",
		Help: "Count of expired sessions removed by the sweeper",
	}, []string{"result"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveLogin increments the login counter with a result label.
func ObserveLogin(result string) {
	loginAttempts.WithLabelValues(result).Inc()
}

// IncrementSessions increments the active session gauge.
func IncrementSessions() {
	activeSessions.Inc()
}

// DecrementSessions decrements the active session gauge.
func DecrementSessions() {
	activeSessions.Dec()
}

// SetSessions sets the active session gauge to a specific count.
func SetSessions(count int) {
	if count < 0 {
		count = 0
	}
	activeSessions.Set(float64(count))
}

// ObserveListingTransition records a listing status change.
func ObserveListingTransition(status string) {
	listingTransitions.WithLabelValues(status).Inc()
}

// ObserveReport records a report submission or status change.
func ObserveReport(status string) {
	reportEvents.WithLabelValues(status).Inc()
}

// ObserveSessionSweep records the outcome of one sweeper pass.
func ObserveSessionSweep(result string) {
	sessionSweeps.WithLabelValues(result).Inc()
}
