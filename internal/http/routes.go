package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

var (
	_ RouteGroup = (*CompositionRoutes)(nil)
	_ RouteGroup = (*OrderRoutes)(nil)
	_ RouteGroup = (*CatalogRoutes)(nil)
	_ RouteGroup = (*AuditRoutes)(nil)
)
