package middleware

import (
	"net/http"
	"strconv"
	"time"

	"veraz/config"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware records Prometheus HTTP metrics on a private registry.
type MetricsMiddleware struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	inflight  *prometheus.GaugeVec
}

// NewMetricsMiddleware creates the HTTP collectors along with the process and Go runtime ones.
func NewMetricsMiddleware(cfg *config.Config) *MetricsMiddleware {
	namespace := "veraz"
	if cfg != nil && cfg.Env.ServiceName != "" {
		namespace = prometheusName(cfg.Env.ServiceName)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method, route and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	inflight := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "http_requests_inflight",
		Help:      "HTTP requests currently being served.",
	}, []string{"route"})
	registry.MustRegister(requests, durations, inflight)

	return &MetricsMiddleware{
		registry:  registry,
		requests:  requests,
		durations: durations,
		inflight:  inflight,
	}
}

// Handle records one observation per request, labelled by the route template.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}

		m.inflight.WithLabelValues(route).Inc()
		defer m.inflight.WithLabelValues(route).Dec()

		start := time.Now()
		err := next(c)
		if err != nil {
			// Write the error response now so the recorded status is the final one.
			c.Error(err)
		}

		status := strconv.Itoa(c.Response().Status)
		method := c.Request().Method
		m.requests.WithLabelValues(method, route, status).Inc()
		m.durations.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *MetricsMiddleware) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the registry backing the collectors.
func (m *MetricsMiddleware) Registry() *prometheus.Registry {
	return m.registry
}

// prometheusName keeps the characters allowed in a metric namespace.
func prometheusName(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}

	return string(out)
}
