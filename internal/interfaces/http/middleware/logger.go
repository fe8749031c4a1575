package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"fantera.backend/pkg/logger"
)

// LoggerMiddleware logs each request through the structured logger. Probe
// and scrape endpoints are skipped to keep the logs readable.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/health" || path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}
		logger.LogRequest(c.Request.Context(), c.Request.Method, path, c.Writer.Status(), latency, c.ClientIP())
	}
}
