package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/dispatch-service/internal/metrics"
	"github.com/guttosm/dispatch-service/internal/middleware"
	"github.com/guttosm/dispatch-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	SessionRateLimit  int
	APIKeys           map[string]bool
	EnableAuth        bool
	EnableIdempotency bool
	IdempotencyStore  middleware.IdempotencyStore
	RequestTimeout    time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	Auditor           middleware.Auditor
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
		EnableAuth: false,
	}
}

// Services are the business services exposed over HTTP. A nil service leaves
// its routes unregistered.
type Services struct {
	Compositions service.CompositionService
	Orders       service.OrderService
	Catalog      service.CatalogService
	Audit        service.AuditService
}

// NewRouter creates and configures the Gin router for the dispatch service.
func NewRouter(services Services, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	for _, group := range routeGroups(services, &cfg) {
		group.RegisterRoutes(api, &cfg)
	}

	return router
}

func routeGroups(services Services, cfg *RouterConfig) []RouteGroup {
	var groups []RouteGroup
	if services.Catalog != nil {
		groups = append(groups, NewCatalogRoutes(services.Catalog))
	}
	if services.Compositions != nil {
		groups = append(groups, NewCompositionRoutes(services.Compositions, cfg.Auditor))
	}
	if services.Orders != nil {
		groups = append(groups, NewOrderRoutes(services.Orders, cfg.Auditor))
	}
	if services.Audit != nil {
		groups = append(groups, NewAuditRoutes(services.Audit))
	}
	return groups
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "accept", "Cache-Control", "X-Requested-With", "X-API-Key", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-Idempotency-Replayed", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.Auditor),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}

	if cfg.EnableIdempotency {
		idempotencyCfg := middleware.DefaultIdempotencyConfig()
		if cfg.IdempotencyStore != nil {
			idempotencyCfg.Store = cfg.IdempotencyStore
		}
		api.Use(middleware.Idempotency(idempotencyCfg))
	}

	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
	}
}
