package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the billing counters exposed on /metrics. It carries its own
// registry so tests can run several servers in one process.
type Metrics struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loanflow",
		Subsystem: "billing",
		Name:      "subscription_transitions_total",
		Help:      "Committed subscription transitions by kind.",
	}, []string{"kind"})
	registry.MustRegister(transitions)

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "loanflow",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status_code"})
	registry.MustRegister(requests)

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "loanflow",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
	registry.MustRegister(latency)

	return &Metrics{
		registry:    registry,
		transitions: transitions,
		requests:    requests,
		latency:     latency,
	}
}

func (m *Metrics) ObserveTransition(kind string) {
	m.transitions.WithLabelValues(kind).Inc()
}

// HTTPMiddleware records per-route request counts and latency. The route
// template is used as the path label to keep cardinality bounded.
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
