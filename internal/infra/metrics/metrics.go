// Package metrics exposes storefront counters in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"storefront/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so parallel apps and tests never clash.
type Metrics struct {
	registry *prometheus.Registry

	cartOperations   *prometheus.CounterVec
	checkoutOutcomes *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New registers the storefront collectors plus the Go runtime collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		cartOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_cart_operations_total",
				Help: "Total number of cart mutations",
			},
			[]string{"operation"},
		),
		checkoutOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_checkout_outcomes_total",
				Help: "Total number of checkout attempts by outcome",
			},
			[]string{"outcome"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_http_requests_total",
				Help: "Total number of storefront HTTP requests",
			},
			[]string{"route", "method", "status_code"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_http_request_duration_seconds",
				Help:    "Duration of storefront HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
	}
}

// AsRecorder exposes the business counters to use cases.
func AsRecorder(m *Metrics) service.MetricsRecorder { return m }

func (m *Metrics) CartOperation(operation string) {
	m.cartOperations.WithLabelValues(operation).Inc()
}

func (m *Metrics) CheckoutOutcome(outcome string) {
	m.checkoutOutcomes.WithLabelValues(outcome).Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// Handler serves the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
