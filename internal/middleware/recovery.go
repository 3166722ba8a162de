package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dispatch-service/internal/domain/dto"
	"github.com/guttosm/dispatch-service/internal/i18n"
	"github.com/guttosm/dispatch-service/internal/logger"
	"github.com/guttosm/dispatch-service/internal/metrics"
)

// Recovery returns a middleware that recovers from panics and returns a 500 error.
// The panic is logged with its stack and counted per route.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID := GetRequestID(c)
				logger.FromContext(c.Request.Context()).Error().
					Str("request_id", requestID).
					Str("path", c.Request.URL.Path).
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("PANIC recovered")
				metrics.RecordPanic(c.FullPath())

				message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
			}
		}()
		c.Next()
	}
}
