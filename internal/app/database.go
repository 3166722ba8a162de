// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/dispatch-service/config"
	"github.com/guttosm/dispatch-service/internal/circuitbreaker"
	"github.com/guttosm/dispatch-service/internal/metrics"
	"github.com/guttosm/dispatch-service/internal/repository"
)

// DatabaseComponents holds MongoDB-backed repositories, each behind its own
// circuit breaker.
type DatabaseComponents struct {
	DB            *repository.MongoDB
	Catalog       repository.CatalogRepositoryInterface
	CatalogWriter repository.CatalogWriter
	Orders        repository.OrdersRepositoryInterface
	Audit         repository.AuditRepositoryInterface
	Drafts        repository.DraftMirror
	Breakers      map[string]*circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the repositories.
// Returns nil if the database is disabled or the connection fails; the
// service then runs on in-memory stores.
func InitializeDatabase(cfg config.DatabaseConfig, draftTTL time.Duration) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with in-memory stores")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ttlDays := int(cfg.AuditTTL.Hours() / 24)
	if err := db.SetAuditTTL(ctx, ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set audit TTL index (may already exist)")
	}
	if err := db.SetDraftTTL(ctx, draftTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set draft TTL index (may already exist)")
	}

	catalogCB := newBreaker(cfg, "mongodb-catalog")
	ordersCB := newBreaker(cfg, "mongodb-orders")
	auditCB := newBreaker(cfg, "mongodb-audit")
	draftsCB := newBreaker(cfg, "mongodb-drafts")

	catalog := repository.NewCatalogRepository(db)

	return &DatabaseComponents{
		DB:            db,
		Catalog:       repository.NewCatalogRepositoryWithCircuitBreaker(catalog, catalogCB),
		CatalogWriter: catalog,
		Orders:        repository.NewOrdersRepositoryWithCircuitBreaker(repository.NewOrdersRepository(db), ordersCB),
		Audit:         repository.NewAuditRepositoryWithCircuitBreaker(repository.NewAuditRepository(db), auditCB),
		Drafts:        repository.NewDraftMirrorWithCircuitBreaker(repository.NewMongoDraftMirror(db), draftsCB),
		Breakers: map[string]*circuitbreaker.CircuitBreaker{
			"mongodb_catalog": catalogCB,
			"mongodb_orders":  ordersCB,
			"mongodb_audit":   auditCB,
			"mongodb_drafts":  draftsCB,
		},
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) {
	if d == nil || d.DB == nil {
		return
	}
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}

func newBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		Ignore:           repository.DomainErrors,
		OnStateChange:    publishBreakerState,
	})
}

func publishBreakerState(name string, _, to circuitbreaker.State) {
	metrics.SetCircuitBreakerState(name, int(to))
}
