// Package app provides router configuration.
package app

import (
	"context"

	"github.com/guttosm/dispatch-service/config"
	"github.com/guttosm/dispatch-service/internal/http"
	"github.com/guttosm/dispatch-service/internal/repository"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Services      http.Services
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the health checks and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	db *DatabaseComponents,
	rdb *RedisComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("catalog", http.HealthCheckFunc(services.Ready))

	if db != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(db.DB.HealthCheck))
		for name, cb := range db.Breakers {
			healthHandler.RegisterCircuitBreaker(name, cb)
		}
	}
	if rdb != nil {
		healthHandler.RegisterChecker("redis", http.HealthCheckFunc(func(ctx context.Context) error {
			return repository.RedisHealthCheck(ctx, rdb.Client)
		}))
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		SessionRateLimit:  cfg.Server.SessionRateLimit,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: cfg.Server.EnableIdempotency,
		RequestTimeout:    cfg.Server.RequestTimeout,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
	}
	if rdb != nil {
		routerCfg.IdempotencyStore = rdb.Idempotency
	}
	// A nil *AsyncAuditor must not become a non-nil interface.
	if services.Auditor != nil {
		routerCfg.Auditor = services.Auditor
	}

	return &RouterComponents{
		Services: http.Services{
			Compositions: services.Compositions,
			Orders:       services.Orders,
			Catalog:      services.Catalog,
			Audit:        services.Audit,
		},
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
