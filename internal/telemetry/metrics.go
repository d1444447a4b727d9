package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus instruments on a private
// registry, so tests can run any number of instances side by side.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	sweepsTotal       prometheus.Counter
	alertsStored      prometheus.Counter
	importedCampaigns prometheus.Gauge
}

// New creates and registers the instruments. A nil registry gets a
// fresh private one.
func New(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "adpace",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by route, method and status code.",
			},
			[]string{"route", "method", "code"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "adpace",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds by route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		sweepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "adpace",
			Name:      "alert_sweeps_total",
			Help:      "Completed alert sweeps.",
		}),
		alertsStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "adpace",
			Name:      "alerts_stored_total",
			Help:      "Alerts persisted by sweeps.",
		}),
		importedCampaigns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "adpace",
			Name:      "imported_campaigns",
			Help:      "Campaigns written by the most recent sheet import.",
		}),
	}
	registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.sweepsTotal,
		m.alertsStored,
		m.importedCampaigns,
	)
	return m
}

// Handler exposes the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Middleware records request counts and durations per chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// RecordSweep counts one completed sweep and the alerts it stored.
func (m *Metrics) RecordSweep(alerts int) {
	m.sweepsTotal.Inc()
	m.alertsStored.Add(float64(alerts))
}

// SetImportedCampaigns reports the size of the most recent sheet import.
func (m *Metrics) SetImportedCampaigns(n int) {
	m.importedCampaigns.Set(float64(n))
}
