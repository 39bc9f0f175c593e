package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce            sync.Once
	httpRequestsTotal       *prometheus.CounterVec
	httpLatencySeconds      *prometheus.HistogramVec
	httpErrorsTotal         *prometheus.CounterVec
	leadSubmissionsTotal    *prometheus.CounterVec
	leadDispatchSeconds     *prometheus.HistogramVec
	leadEventFailuresTotal  prometheus.Counter
	dispatchLogFailureTotal prometheus.Counter
	inflightGuardFailures   prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		httpErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		leadSubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lead_submissions_total",
			Help: "Lead form submissions grouped by form and outcome.",
		}, []string{"form", "outcome"})

		leadDispatchSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lead_dispatch_seconds",
			Help:    "Duration of email provider dispatch calls.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"provider", "outcome"})

		leadEventFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lead_event_publish_failures_total",
			Help: "Lead events that could not be published.",
		})

		dispatchLogFailureTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lead_dispatch_log_failures_total",
			Help: "Dispatch log rows that could not be persisted.",
		})

		inflightGuardFailures = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lead_inflight_guard_failures_total",
			Help: "Submissions that fell back to the local in-flight guard.",
		})

		prometheus.MustRegister(
			httpRequestsTotal,
			httpLatencySeconds,
			httpErrorsTotal,
			leadSubmissionsTotal,
			leadDispatchSeconds,
			leadEventFailuresTotal,
			dispatchLogFailureTotal,
			inflightGuardFailures,
		)
	})
}

// HTTPRequests exposes the counter for API requests.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram for API requests.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// HTTPErrors exposes the counter for API error responses.
func HTTPErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return httpErrorsTotal
}

// LeadSubmissions counts submissions by form kind and outcome (delivered, failed, invalid, in_flight).
func LeadSubmissions() *prometheus.CounterVec {
	RegisterMetrics()
	return leadSubmissionsTotal
}

// LeadDispatchDuration observes provider call latency.
func LeadDispatchDuration() *prometheus.HistogramVec {
	RegisterMetrics()
	return leadDispatchSeconds
}

// LeadEventFailures counts lead events that failed to publish.
func LeadEventFailures() prometheus.Counter {
	RegisterMetrics()
	return leadEventFailuresTotal
}

// DispatchLogFailures counts dispatch log rows that failed to persist.
func DispatchLogFailures() prometheus.Counter {
	RegisterMetrics()
	return dispatchLogFailureTotal
}

// InflightGuardFailures counts shared in-flight guard errors.
func InflightGuardFailures() prometheus.Counter {
	RegisterMetrics()
	return inflightGuardFailures
}
