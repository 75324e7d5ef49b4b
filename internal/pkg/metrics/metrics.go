// Package metrics exposes gateway request and procedure metrics to Prometheus
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "akademik"

// Metrics holds the collectors of the gateway. It uses its own registry so
// tests can create independent instances.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	procedureDuration *prometheus.HistogramVec
	procedureErrors   *prometheus.CounterVec
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests handled by the gateway.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		procedureDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "procedure_duration_seconds",
				Help:      "Stored procedure execution time in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"procedure"},
		),
		procedureErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "procedure_errors_total",
				Help:      "Total number of failed stored procedure executions.",
			},
			[]string{"procedure"},
		),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.procedureDuration,
		m.procedureErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest records a finished HTTP request. route is the matched route
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveProcedure records a procedure execution
func (m *Metrics) ObserveProcedure(procedure string, elapsed time.Duration, err error) {
	m.procedureDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
	if err != nil {
		m.procedureErrors.WithLabelValues(procedure).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
