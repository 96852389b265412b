package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the HTTP API.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Transforms counts transformed values by operation, e.g. "convert:kebab" or "pluralize".
	Transforms *prometheus.CounterVec

	RuleReloads *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wordcase",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "wordcase",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "wordcase",
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),
		Transforms: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wordcase",
				Name:      "transforms_total",
				Help:      "Total number of values transformed, by operation",
			},
			[]string{"operation"},
		),
		RuleReloads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wordcase",
				Name:      "rule_reloads_total",
				Help:      "Total number of inflection rule reloads, by result",
			},
			[]string{"result"},
		),
	}
}

// ObserveReload records the outcome of a rules reload. It matches the
// signature expected by rulewatch.WithReloadObserver.
func (m *Metrics) ObserveReload(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	m.RuleReloads.WithLabelValues(result).Inc()
}

func (m *Metrics) countTransforms(operation string, n int) {
	m.Transforms.WithLabelValues(operation).Add(float64(n))
}

// middleware records request counts and durations by route pattern, so
// path parameters do not create new label values.
func (m *Metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		m.RequestsInFlight.Inc()
		defer m.RequestsInFlight.Dec()

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
