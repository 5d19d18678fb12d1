package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	reqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridgemart_http_requests_total",
			Help: "Requests handled, partitioned by route, method and status code",
		},
		[]string{"route", "method", "status"},
	)
	reqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridgemart_http_request_duration_seconds",
			Help:    "Request handling time in seconds, partitioned by route and method",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

func init() { prometheus.MustRegister(reqCount, reqDuration) }

// Metrics 按路由模板（非原始路径）打点，避免 :id 导致基数爆炸
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		reqCount.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		reqDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
