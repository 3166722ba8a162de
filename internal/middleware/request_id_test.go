package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/dispatch-service/internal/logger"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	isUUID := func(t *testing.T, id string) {
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}

	tests := []struct {
		name        string
		headerValue string
		validate    func(*testing.T, string)
	}{
		{
			name:        "generates new request ID when not provided",
			headerValue: "",
			validate:    isUUID,
		},
		{
			name:        "uses provided request ID from header",
			headerValue: "custom-request-id-123",
			validate: func(t *testing.T, id string) {
				assert.Equal(t, "custom-request-id-123", id)
			},
		},
		{
			name:        "replaces overlong request ID",
			headerValue: strings.Repeat("a", maxRequestIDLength+1),
			validate:    isUUID,
		},
		{
			name:        "replaces request ID with whitespace",
			headerValue: "two words",
			validate:    isUUID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, GetRequestID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.headerValue != "" {
				req.Header.Set(RequestIDHeader, tt.headerValue)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			requestID := w.Body.String()
			assert.NotEmpty(t, requestID)
			assert.Equal(t, requestID, w.Header().Get(RequestIDHeader))
			tt.validate(t, requestID)
		})
	}
}

func TestRequestID_TagsContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		logger.FromContext(c.Request.Context()).Warn().Msg("inside handler")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-7", line["request_id"])
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		setupContext func(*gin.Context)
		expectedID   string
	}{
		{
			name:         "returns empty string when not set",
			setupContext: func(*gin.Context) {},
			expectedID:   "",
		},
		{
			name: "returns request ID when set",
			setupContext: func(c *gin.Context) {
				c.Set(string(RequestIDKey), "test-id-123")
			},
			expectedID: "test-id-123",
		},
		{
			name: "ignores non-string values",
			setupContext: func(c *gin.Context) {
				c.Set(string(RequestIDKey), 42)
			},
			expectedID: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			tt.setupContext(c)

			assert.Equal(t, tt.expectedID, GetRequestID(c))
		})
	}
}
