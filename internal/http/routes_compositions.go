package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/dispatch-service/internal/middleware"
	"github.com/guttosm/dispatch-service/internal/service"
)

// CompositionRoutes handles composition route registration.
type CompositionRoutes struct {
	handler *CompositionHandler
}

// NewCompositionRoutes creates a new CompositionRoutes instance.
func NewCompositionRoutes(compositions service.CompositionService, auditor middleware.Auditor) *CompositionRoutes {
	return &CompositionRoutes{handler: NewCompositionHandler(compositions, auditor)}
}

// RegisterRoutes registers the session routes under /compositions/:session.
// Each session gets its own request budget when a session rate limit is set.
func (r *CompositionRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	session := rg.Group("/compositions/:" + middleware.SessionParam)
	if cfg.SessionRateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.SessionRateLimit, cfg.RateWindow)
		session.Use(limiter.SessionRateLimit())
	}

	session.GET("", r.handler.GetComposition)
	session.DELETE("", r.handler.Discard)
	session.PUT("/vehicle", r.handler.SelectVehicle)
	session.PUT("/pending", r.handler.SetPending)
	session.POST("/items", r.handler.AddItem)
	session.POST("/items/:index/increment", r.handler.IncrementItem)
	session.POST("/items/:index/decrement", r.handler.DecrementItem)
	session.DELETE("/items/:index", r.handler.RemoveItem)
	session.POST("/confirm", r.handler.Confirm)
}
