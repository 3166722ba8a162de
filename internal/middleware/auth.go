package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dispatch-service/internal/domain/dto"
	"github.com/guttosm/dispatch-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"

	// ClientKey is the context key holding the authenticated client's fingerprint.
	ClientKey ContextKey = "client"
)

// APIKeyAuth returns a middleware that validates API keys.
// It checks the X-API-Key header first, then falls back to api_key query parameter.
// If validKeys is nil or empty, authentication is disabled. Accepted requests
// carry a fingerprint of the key, never the key itself, for logs and
// idempotency scoping.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		switch {
		case key == "":
			rejectUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		case !validKeys[key]:
			rejectUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Set(string(ClientKey), keyFingerprint(key))
		c.Next()
	}
}

// GetClient returns the authenticated client's fingerprint, or "" when the
// request was not authenticated.
func GetClient(c *gin.Context) string {
	return c.GetString(string(ClientKey))
}

func rejectUnauthorized(c *gin.Context, messageKey string) {
	locale := i18n.GetLocale(c)
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.GetTranslator().Translate(messageKey, locale)).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}

func keyFingerprint(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:6])
}
