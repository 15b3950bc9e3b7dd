package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/darzi-app/darzi/internal/metrics"
)

// RequestMetrics counts requests by method, matched route and status code.
func RequestMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
