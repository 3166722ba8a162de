package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/dispatch-service/internal/domain/dto"
	"github.com/guttosm/dispatch-service/internal/i18n"
	"github.com/guttosm/dispatch-service/internal/logger"
)

// ErrorHandler returns a middleware that handles gin context errors.
// Handlers that already wrote a response only get their error logged, at a
// level matching the status they sent. Unanswered errors become a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)
		status := c.Writer.Status()
		if !c.Writer.Written() {
			status = http.StatusInternalServerError
		}

		level := zerolog.ErrorLevel
		if status < http.StatusInternalServerError {
			level = zerolog.WarnLevel
		}
		logger.FromContext(c.Request.Context()).WithLevel(level).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status_code", status).
			Msg("Request error")

		if !c.Writer.Written() {
			locale := i18n.GetLocale(c)
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, locale)
			errorResp := dto.NewError(dto.ErrCodeInternal, message).
				WithRequestID(requestID)
			c.JSON(http.StatusInternalServerError, errorResp)
		}
	}
}
