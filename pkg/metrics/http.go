package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// APIClientMetrics records outcomes of remote API calls.
type APIClientMetrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewAPIClientMetrics registers the API client metrics on the provided registerer.
func NewAPIClientMetrics(reg prometheus.Registerer) *APIClientMetrics {
	if reg == nil {
		return &APIClientMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "api_request_duration_seconds",
		Help:    "Duration of remote API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_requests_total",
		Help: "Remote API requests by method, path and status code.",
	}, []string{"method", "path", "status"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "api_request_failures_total",
		Help: "Remote API requests that failed before a response arrived.",
	}, []string{"method", "path"})
	reg.MustRegister(duration, requests, failures)
	return &APIClientMetrics{
		duration: duration,
		requests: requests,
		failures: failures,
	}
}

// ObserveDuration records the latency for a completed call.
func (m *APIClientMetrics) ObserveDuration(method, path string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(method), normalizeLabel(path)).Observe(duration.Seconds())
}

// IncRequest counts a completed call with its response status.
func (m *APIClientMetrics) IncRequest(method, path, status string) {
	if m == nil || m.requests == nil {
		return
	}
	m.requests.WithLabelValues(normalizeLabel(method), normalizeLabel(path), normalizeLabel(status)).Inc()
}

// IncFailure counts a call that never produced a response.
func (m *APIClientMetrics) IncFailure(method, path string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(method), normalizeLabel(path)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
