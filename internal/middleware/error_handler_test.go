package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		setupHandler   func(*gin.Engine)
		expectedStatus int
		expectedBody   string
		mustContain    []string
	}{
		{
			name: "handles gin context errors",
			path: "/error",
			setupHandler: func(router *gin.Engine) {
				router.GET("/error", func(c *gin.Context) {
					_ = c.Error(errors.New("test error"))
				})
			},
			expectedStatus: http.StatusInternalServerError,
			mustContain:    []string{"internal_error", "An unexpected error occurred"},
		},
		{
			name: "keeps the handler's response",
			path: "/handled",
			setupHandler: func(router *gin.Engine) {
				router.GET("/handled", func(c *gin.Context) {
					_ = c.Error(errors.New("order not found"))
					c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
				})
			},
			expectedStatus: http.StatusNotFound,
			mustContain:    []string{"not_found"},
		},
		{
			name:   "keeps an unavailable store response",
			method: http.MethodPost,
			path:   "/orders",
			setupHandler: func(router *gin.Engine) {
				router.POST("/orders", func(c *gin.Context) {
					_ = c.Error(errors.New("orders store: circuit open"))
					c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service_unavailable"})
				})
			},
			expectedStatus: http.StatusServiceUnavailable,
			mustContain:    []string{"service_unavailable"},
		},
		{
			name: "does nothing when no errors",
			path: "/ok",
			setupHandler: func(router *gin.Engine) {
				router.GET("/ok", func(c *gin.Context) {
					c.String(http.StatusOK, "ok")
				})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), ErrorHandler())
			tt.setupHandler(router)

			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req := httptest.NewRequest(method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			for _, substr := range tt.mustContain {
				assert.Contains(t, w.Body.String(), substr)
			}
		})
	}
}
