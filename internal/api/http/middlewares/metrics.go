package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// PrometheusMetrics собирает счётчики/гистограммы по каждому запросу (кроме /metrics).
func PrometheusMetrics(c *gin.Context) {
	if c.Request.URL.Path == "/metrics" {
		c.Next()
		return
	}

	httpRequestsInFlight.Inc()
	start := time.Now()

	c.Next()

	duration := time.Since(start).Seconds()
	status := strconv.Itoa(c.Writer.Status())
	path := c.FullPath()
	if path == "" {
		path = "unknown"
	}

	httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	httpRequestsInFlight.Dec()
}
