//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	assert.NotNil(t, GetTranslator())
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{name: "english alert", key: AlertKeyTruckFull, locale: "en", expected: "Truck full!"},
		{name: "spanish alert", key: AlertKeyFullAndOverweight, locale: "es", expected: "¡Camión lleno y sobrepeso!"},
		{name: "portuguese alert", key: AlertKeyOverweight, locale: "pt", expected: "Excesso de peso!"},
		{name: "portuguese error", key: ErrKeyOrderNotFound, locale: "pt", expected: "Pedido não encontrado"},
		{name: "spanish error", key: ErrKeyUnknownSKU, locale: "es", expected: "SKU no encontrado en el catálogo"},
		{name: "empty locale defaults to english", key: ErrKeyOrderNotFound, locale: "", expected: "Order not found"},
		{name: "unsupported locale falls back to english", key: AlertKeyOverweight, locale: "fr", expected: "Overweight!"},
		{name: "unknown key returns key", key: "unknown.key", locale: "en", expected: "unknown.key"},
		{name: "unknown key in unsupported locale falls back", key: "unknown.key", locale: "fr", expected: "unknown.key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{
			name:           "no header returns default",
			acceptLanguage: "",
			expected:       DefaultLocale,
		},
		{
			name:           "english header",
			acceptLanguage: "en",
			expected:       "en",
		},
		{
			name:           "portuguese header",
			acceptLanguage: "pt",
			expected:       "pt",
		},
		{
			name:           "spanish header with region",
			acceptLanguage: "es-MX,es;q=0.9",
			expected:       "es",
		},
		{
			name:           "full locale with region",
			acceptLanguage: "en-US",
			expected:       "en",
		},
		{
			name:           "multiple languages",
			acceptLanguage: "en-US,en;q=0.9,pt;q=0.8",
			expected:       "en",
		},
		{
			name:           "unsupported language defaults",
			acceptLanguage: "fr",
			expected:       DefaultLocale,
		},
		{
			name:           "case insensitive",
			acceptLanguage: "EN",
			expected:       "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			result := GetLocale(c)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDefaultMessages_LocalesShareKeys(t *testing.T) {
	messages := getDefaultMessages()
	english := messages[DefaultLocale]

	for locale, localeMessages := range messages {
		assert.Len(t, localeMessages, len(english), "locale %s", locale)
		for key := range english {
			assert.Contains(t, localeMessages, key, "locale %s", locale)
		}
	}
}
