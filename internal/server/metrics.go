package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus instruments for the HTTP layer. Each Server
// owns its own registry so tests can construct servers independently.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	claimsAnalyzed  *prometheus.CounterVec
}

// NewMetrics creates and registers the instruments.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cortex_http_requests_total",
			Help: "HTTP requests served, by method, path and status.",
		}, []string{"method", "path", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cortex_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		claimsAnalyzed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cortex_claims_analyzed_total",
			Help: "Claims analyzed, by derived status and risk level.",
		}, []string{"status", "risk_level"}),
	}
}

// RequestServed records one completed HTTP exchange.
func (m *Metrics) RequestServed(method, path string, status int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ClaimAnalyzed records one claim analysis outcome.
func (m *Metrics) ClaimAnalyzed(status, riskLevel string) {
	m.claimsAnalyzed.WithLabelValues(status, riskLevel).Inc()
}

// Handler exposes the registry in prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
