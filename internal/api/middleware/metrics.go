package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"voicemap/internal/app/metrics"
)

// Metrics records request counts and latency per matched route
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(route, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
