// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/dispatch-service/config"
	"github.com/guttosm/dispatch-service/internal/http"
)

const (
	seedTimeout  = 30 * time.Second
	closeTimeout = 5 * time.Second
)

var errCatalogNotLoaded = errors.New("catalog snapshot not loaded")

// App is the wired application: the router plus everything that has to be
// stopped when the server shuts down.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents

	db  *DatabaseComponents
	rdb *RedisComponents
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *App {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	// Stores are optional; each missing one degrades to an in-memory fallback.
	db := InitializeDatabase(cfg.Database, cfg.Redis.DraftTTL)
	rdb := InitializeRedis(cfg.Redis)

	services := InitializeServices(cfg, db, rdb)
	routerComponents := InitializeRouter(services, db, rdb, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Services, routerComponents.HealthHandler, routerComponents.Config),
		Services: services,
		db:       db,
		rdb:      rdb,
	}
}

// Close stops background work and releases store connections. Pending draft
// and audit writes are flushed before the stores are closed.
func (a *App) Close() {
	a.Services.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	a.rdb.Close()
	a.db.Close(ctx)
}
