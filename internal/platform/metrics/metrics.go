// Package metrics provides the Prometheus instrumentation used by the
// services: per-request counters and latency histograms, the worker's task
// metrics, and the /metrics exposition handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private Prometheus registry and the collectors registered
// in it. Each service constructs its own Recorder in the composition root
// and injects it where needed; there is no process-wide registry, so tests
// can build isolated instances.
type Recorder struct {
	registry       *prometheus.Registry
	requestCount   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	tasksProcessed *prometheus.CounterVec
	activeTasks    prometheus.Gauge
}

// NewRecorder creates a Recorder whose metric names are prefixed with the
// given namespace (e.g. namespace "api" yields api_requests_total).
func NewRecorder(namespace string) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: namespace + "_requests_total",
			Help: "Total requests",
		}, []string{"method", "endpoint", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    namespace + "_request_latency_seconds",
			Help:    "Request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}

	r.registry.MustRegister(r.requestCount, r.requestLatency)

	return r
}

// EnableTaskMetrics registers the worker's task counters on top of the
// request metrics: a processed-tasks counter partitioned by status and a
// gauge of currently active tasks. It must be called at most once, before
// the Recorder is shared.
func (r *Recorder) EnableTaskMetrics(namespace string) {
	r.tasksProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: namespace + "_tasks_processed_total",
		Help: "Total tasks processed",
	}, []string{"status"})
	r.activeTasks = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: namespace + "_active_tasks",
		Help: "Currently active tasks",
	})

	r.registry.MustRegister(r.tasksProcessed, r.activeTasks)
}

// RecordRequest increments the request counter for the (method, endpoint,
// status) label tuple and observes the latency for the endpoint. Label
// values are free-form strings; the call never fails.
func (r *Recorder) RecordRequest(method, endpoint, status string, latencySeconds float64) {
	r.requestCount.WithLabelValues(method, endpoint, status).Inc()
	r.requestLatency.WithLabelValues(endpoint).Observe(latencySeconds)
}

// RecordTaskProcessed increments the processed-tasks counter for the given
// status. No-op when task metrics are not enabled.
func (r *Recorder) RecordTaskProcessed(status string) {
	if r.tasksProcessed == nil {
		return
	}
	r.tasksProcessed.WithLabelValues(status).Inc()
}

// IncActiveTasks increments the active-tasks gauge. No-op when task metrics
// are not enabled.
func (r *Recorder) IncActiveTasks() {
	if r.activeTasks == nil {
		return
	}
	r.activeTasks.Inc()
}

// Handler returns the /metrics scrape endpoint for this Recorder's registry.
// The rendered exposition reflects every update made before the scrape.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
