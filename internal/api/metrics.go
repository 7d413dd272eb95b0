package api

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the server's Prometheus collectors
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	rpcCalls        *prometheus.CounterVec
	authRejections  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
		rpcCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_rpc_calls_total",
				Help: "JSON-RPC calls by method and error code",
			},
			[]string{"method", "code"},
		),
		authRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_rejections_total",
				Help: "Total number of rejected credentials",
			},
			[]string{"reason"},
		),
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.rpcCalls, m.authRejections)
	return m
}

// Middleware records request counts and latencies
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requestsTotal.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) observeCall(method string, code int) {
	if m == nil {
		return
	}
	m.rpcCalls.WithLabelValues(method, strconv.Itoa(code)).Inc()
}

func (m *Metrics) rejectAuth(reason string) {
	if m == nil {
		return
	}
	m.authRejections.WithLabelValues(reason).Inc()
}
