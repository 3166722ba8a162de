package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dispatch-service/internal/domain/dto"
	"github.com/guttosm/dispatch-service/internal/i18n"
)

// Timeout bounds the request context by timeout. Handlers run on the request
// goroutine and see the deadline through their context; store calls that
// overrun it fail with context.DeadlineExceeded. A handler that returns
// without writing after the deadline passed gets a 504 here.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}
		locale := i18n.GetLocale(c)
		errorResp := dto.NewError(dto.ErrCodeTimeout, i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, locale)).
			WithRequestID(GetRequestID(c))
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
	}
}
