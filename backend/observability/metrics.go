// ABOUTME: Prometheus metrics for calculator self-monitoring
// ABOUTME: Registers HTTP, catalog and computation collectors on a custom registry

package observability

import (
	"time"

	"github.com/markalston/inference-calculator/backend/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "infercalc"

// Metrics holds all Prometheus metrics for the backend.
// It uses a custom registry to avoid polluting the global default.
type Metrics struct {
	Registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RateLimitedTotal    *prometheus.CounterVec

	// Catalog metrics
	CatalogLoadsTotal   *prometheus.CounterVec
	CatalogLoadDuration prometheus.Histogram
	CatalogModels       *prometheus.GaugeVec

	// Computation metrics
	ComputationsTotal *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all Prometheus metrics
// registered on a custom registry, plus the Go runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		RateLimitedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter.",
		}, []string{"tier"}),

		CatalogLoadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_loads_total",
			Help:      "Total number of catalog fetches from the configured source.",
		}, []string{"source", "status"}),
		CatalogLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_load_duration_seconds",
			Help:      "Duration of catalog fetches in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		CatalogModels: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_models",
			Help:      "Number of hardware models in the current catalog.",
		}, []string{"class"}),

		ComputationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "computations_total",
			Help:      "Total number of metric computations by operation and outcome.",
		}, []string{"operation", "outcome"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.RateLimitedTotal,
		m.CatalogLoadsTotal,
		m.CatalogLoadDuration,
		m.CatalogModels,
		m.ComputationsTotal,
	)

	return m
}

// ObserveCatalogLoad records one catalog fetch. Its signature matches
// catalog.LoadObserver.
func (m *Metrics) ObserveCatalogLoad(source string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.CatalogLoadsTotal.WithLabelValues(source, status).Inc()
	m.CatalogLoadDuration.Observe(d.Seconds())
}

// SetCatalogModels publishes per-class model counts
func (m *Metrics) SetCatalogModels(c *models.Catalog) {
	for _, class := range c.Classes() {
		m.CatalogModels.WithLabelValues(string(class)).Set(float64(len(c.Models(class))))
	}
}

// ObserveComputation counts one engine call; outcome is "ok", "empty" or "error"
func (m *Metrics) ObserveComputation(operation, outcome string) {
	m.ComputationsTotal.WithLabelValues(operation, outcome).Inc()
}
