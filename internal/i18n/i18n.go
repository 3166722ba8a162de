// Package i18n provides internationalization support for the dispatch service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":                 "Invalid request",
			"error.invalid_request_body":            "Invalid request body",
			"error.internal_error":                  "An unexpected error occurred",
			"error.unauthorized":                    "Unauthorized",
			"error.api_key_required":                "API key is required",
			"error.invalid_api_key":                 "Invalid API key",
			"error.not_found":                       "Not found",
			"error.rate_limit_exceeded":             "Too many requests, please try again later",
			"error.conflict":                        "Conflict",
			"error.timeout":                         "The request took too long",
			"error.invalid_session_id":              "Session id is missing or too long",
			"error.invalid_item_index":              "No item at that position",
			"error.invalid_quantity":                "Quantity must be at least 1",
			"error.unknown_sku":                     "SKU not found in catalog",
			"error.order_not_found":                 "Order not found",
			"error.order_conflict":                  "The order was changed by someone else, please retry",
			"error.store_unavailable":               "Storage is unavailable, your changes are kept, please retry",
			"error.composition.missing_vehicle":     "Select a vehicle before confirming",
			"error.composition.no_items":            "Add at least one item before confirming",
			"error.composition.vehicle_unavailable": "The vehicle is already assigned to an open order",
			"error.composition.capacity_exceeded":   "The load exceeds the vehicle capacity",
			"alert.truck_full":                      "Truck full!",
			"alert.overweight":                      "Overweight!",
			"alert.full_and_overweight":             "Truck full and overweight!",
			"warning.draft_restore_failed":          "Your saved draft could not be loaded",
			"warning.draft_sync_failed":             "Your draft could not be saved, changes are kept in memory",
		},
		"es": {
			"error.invalid_request":                 "Solicitud inválida",
			"error.invalid_request_body":            "Cuerpo de la solicitud inválido",
			"error.internal_error":                  "Ocurrió un error inesperado",
			"error.unauthorized":                    "No autorizado",
			"error.api_key_required":                "Se requiere una clave de API",
			"error.invalid_api_key":                 "Clave de API inválida",
			"error.not_found":                       "No encontrado",
			"error.rate_limit_exceeded":             "Demasiadas solicitudes, intente más tarde",
			"error.conflict":                        "Conflicto",
			"error.timeout":                         "La solicitud tardó demasiado",
			"error.invalid_session_id":              "El identificador de sesión falta o es demasiado largo",
			"error.invalid_item_index":              "No hay un artículo en esa posición",
			"error.invalid_quantity":                "La cantidad debe ser al menos 1",
			"error.unknown_sku":                     "SKU no encontrado en el catálogo",
			"error.order_not_found":                 "Pedido no encontrado",
			"error.order_conflict":                  "El pedido fue modificado por otra persona, intente de nuevo",
			"error.store_unavailable":               "El almacenamiento no está disponible, sus cambios se conservan, intente de nuevo",
			"error.composition.missing_vehicle":     "Seleccione un camión antes de confirmar",
			"error.composition.no_items":            "Agregue al menos un artículo antes de confirmar",
			"error.composition.vehicle_unavailable": "El camión ya está asignado a un pedido abierto",
			"error.composition.capacity_exceeded":   "La carga excede la capacidad del camión",
			"alert.truck_full":                      "¡Camión lleno!",
			"alert.overweight":                      "¡Sobrepeso!",
			"alert.full_and_overweight":             "¡Camión lleno y sobrepeso!",
			"warning.draft_restore_failed":          "No se pudo cargar su borrador guardado",
			"warning.draft_sync_failed":             "No se pudo guardar su borrador, los cambios se conservan en memoria",
		},
		"pt": {
			"error.invalid_request":                 "Requisição inválida",
			"error.invalid_request_body":            "Corpo da requisição inválido",
			"error.internal_error":                  "Ocorreu um erro inesperado",
			"error.unauthorized":                    "Não autorizado",
			"error.api_key_required":                "Chave de API é obrigatória",
			"error.invalid_api_key":                 "Chave de API inválida",
			"error.not_found":                       "Não encontrado",
			"error.rate_limit_exceeded":             "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                        "Conflito",
			"error.timeout":                         "A requisição demorou demais",
			"error.invalid_session_id":              "Identificador de sessão ausente ou muito longo",
			"error.invalid_item_index":              "Não há item nessa posição",
			"error.invalid_quantity":                "A quantidade deve ser pelo menos 1",
			"error.unknown_sku":                     "SKU não encontrado no catálogo",
			"error.order_not_found":                 "Pedido não encontrado",
			"error.order_conflict":                  "O pedido foi alterado por outra pessoa, tente novamente",
			"error.store_unavailable":               "Armazenamento indisponível, suas alterações foram mantidas, tente novamente",
			"error.composition.missing_vehicle":     "Selecione um caminhão antes de confirmar",
			"error.composition.no_items":            "Adicione ao menos um item antes de confirmar",
			"error.composition.vehicle_unavailable": "O caminhão já está atribuído a um pedido aberto",
			"error.composition.capacity_exceeded":   "A carga excede a capacidade do caminhão",
			"alert.truck_full":                      "Caminhão cheio!",
			"alert.overweight":                      "Excesso de peso!",
			"alert.full_and_overweight":             "Caminhão cheio e com excesso de peso!",
			"warning.draft_restore_failed":          "Não foi possível carregar seu rascunho salvo",
			"warning.draft_sync_failed":             "Não foi possível salvar seu rascunho, as alterações estão em memória",
		},
	}
}
