package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/logger"
)

// ActionHTTPError is the audit action recorded for requests that failed server-side.
const ActionHTTPError = "http_error"

// RequestLogger returns a middleware that logs HTTP request details in JSON format.
// It logs: request ID, method, path, status code, latency, IP, and user agent.
// Server errors are also handed to the auditor so they land in the audit trail.
func RequestLogger(auditor Auditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.Request.URL.Path
		ip := c.ClientIP()
		client := GetClient(c)

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", ip).
			Str("client", client).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		switch {
		case statusCode >= 500:
			log.Error().Msg("HTTP request")
		case statusCode >= 400:
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if auditor == nil || statusCode < 500 {
			return
		}
		entry := &model.AuditEntry{
			Timestamp:  time.Now(),
			Level:      getLogLevel(statusCode),
			Message:    "HTTP request failed",
			RequestID:  requestID,
			SessionID:  c.Param(SessionParam),
			ActionType: ActionHTTPError,
			Fields: map[string]interface{}{
				"method":      method,
				"path":        path,
				"status_code": statusCode,
				"duration_ms": latency.Milliseconds(),
				"ip":          ip,
				"client":      client,
			},
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}
		auditor.Record(entry)
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
