package middleware

import (
	"time"

	"github.com/akademik/akademik/internal/pkg/logger"
	"github.com/akademik/akademik/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID assigns every request an id and a request scoped logger
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Set("requestID", id)

		l := logger.WithField("requestID", id)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), l))
		c.Next()
	}
}

// Logger writes one access log line per request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		event := logger.Ctx(c.Request.Context()).Info()
		if status >= 500 {
			event = logger.Ctx(c.Request.Context()).Error()
		} else if status >= 400 {
			event = logger.Ctx(c.Request.Context()).Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("clientIP", c.ClientIP()).
			Int("status", status).
			Dur("duration", duration).
			Msg("Request handled")
	}
}

// Metrics records request counts and latencies by route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
