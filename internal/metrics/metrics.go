package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "patient_monitor"

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	Requests          *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	RateLimitAllowed  prometheus.Counter
	RateLimitRejected prometheus.Counter
	StoreErrors       *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests by route and status."},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency by route.", Buckets: prometheus.DefBuckets},
			[]string{"method", "route"},
		),
		RateLimitAllowed: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_allowed_total", Help: "Requests admitted by the rate limiter."},
		),
		RateLimitRejected: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Requests rejected by the rate limiter."},
		),
		StoreErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "store_errors_total", Help: "Requests that failed with a store error, by route."},
			[]string{"route"},
		),
	}
	m.registry.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.RateLimitAllowed,
		m.RateLimitRejected,
		m.StoreErrors,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
