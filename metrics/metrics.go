package metrics

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by path, method and status"},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "catalog_query_duration_seconds", Help: "Catalog query latency by kind", Buckets: prometheus.DefBuckets},
		[]string{"query"},
	)
	QueryErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "catalog_query_errors_total", Help: "Failed catalog queries by kind and class"},
		[]string{"query", "class"},
	)
	CountsCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "counts_cache_requests_total", Help: "Counts cache lookups by result"},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, QueryDuration, QueryErrors, CountsCache)
}

// ObserveQuery records the latency of one catalog query.
func ObserveQuery(query string, start time.Time) {
	QueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
}

func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		HTTPLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
		HTTPRequests.WithLabelValues(path, c.Request.Method, fmt.Sprintf("%d", c.Writer.Status())).Inc()
	}
}

func Exposer() gin.HandlerFunc { return gin.WrapH(promhttp.Handler()) }
