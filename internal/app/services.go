// Package app provides service initialization.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/dispatch-service/config"
	"github.com/guttosm/dispatch-service/internal/composition"
	"github.com/guttosm/dispatch-service/internal/repository"
	"github.com/guttosm/dispatch-service/internal/service"
)

// ServiceComponents holds the business services and the background work
// behind them.
type ServiceComponents struct {
	View         *composition.View
	Poller       *service.SnapshotPoller
	Drafts       *service.DraftSyncer
	Auditor      *service.AsyncAuditor
	Compositions *service.CompositionServiceImpl
	Orders       service.OrderService
	Catalog      service.CatalogService
	Audit        service.AuditService

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// InitializeServices wires the services over MongoDB and Redis when they are
// available and over in-memory stores otherwise. The snapshot poller is
// started before returning; Stop ends it.
func InitializeServices(cfg config.Config, db *DatabaseComponents, rdb *RedisComponents) *ServiceComponents {
	var (
		catalog repository.CatalogRepositoryInterface
		writer  repository.CatalogWriter
		orders  repository.OrdersRepositoryInterface
		mirror  repository.DraftMirror
		audit   service.AuditService
	)

	if db != nil {
		catalog, writer, orders, mirror = db.Catalog, db.CatalogWriter, db.Orders, db.Drafts
		audit = service.NewAuditService(db.Audit)
	} else {
		memoryCatalog := repository.NewMemoryCatalogRepository()
		catalog, writer = memoryCatalog, memoryCatalog
		orders = repository.NewMemoryOrdersRepository()
		mirror = repository.NewMemoryDraftMirror()
	}
	if rdb != nil {
		mirror = rdb.Drafts
	}

	if cfg.Dispatch.SeedFile != "" {
		seedCatalog(writer, cfg.Dispatch.SeedFile)
	}

	view := composition.NewView()
	poller := service.NewSnapshotPoller(catalog, orders, cfg.Dispatch.SnapshotInterval)

	ctx, cancel := context.WithCancel(context.Background())
	if err := poller.Refresh(ctx, view); err != nil {
		log.Warn().Err(err).Msg("Initial snapshot failed - serving an empty catalog until the next refresh")
	}

	drafts := service.NewDraftSyncer(mirror, service.DraftSyncerConfig{
		Workers:    cfg.Dispatch.DraftSyncWorkers,
		BufferSize: cfg.Dispatch.DraftSyncBuffer,
	})

	registry := service.DefaultRegistryConfig()
	if cfg.Sessions.Capacity > 0 {
		registry.Capacity = cfg.Sessions.Capacity
	}
	if cfg.Sessions.Shards > 0 {
		registry.Shards = cfg.Sessions.Shards
	}
	registry.IdleTTL = cfg.Sessions.IdleTTL

	opts := []service.CompositionOption{
		service.WithRegistryConfig(registry),
		service.WithSessionOptions(composition.WithStrictCapacity(cfg.Dispatch.StrictCapacity)),
	}
	if rdb != nil && rdb.Locker != nil {
		opts = append(opts, service.WithVehicleLocker(rdb.Locker))
	}

	components := &ServiceComponents{
		View:         view,
		Poller:       poller,
		Drafts:       drafts,
		Compositions: service.NewCompositionService(view, orders, drafts, opts...),
		Orders:       service.NewOrderService(orders, view),
		Catalog:      service.NewCatalogService(view),
		Audit:        audit,
		cancel:       cancel,
	}
	if audit != nil {
		components.Auditor = service.NewAsyncAuditor(audit, service.AsyncAuditorConfig{
			BufferSize:   cfg.Dispatch.AuditBufferSize,
			NumWorkers:   cfg.Dispatch.AuditWorkers,
			WriteTimeout: cfg.Dispatch.AuditWriteTimeout,
		})
	}

	components.wg.Add(1)
	go func() {
		defer components.wg.Done()
		applied := poller.Run(ctx, view)
		log.Info().Int("snapshots", applied).Msg("Snapshot poller stopped")
	}()

	return components
}

// Ready reports whether a catalog snapshot has been applied.
func (s *ServiceComponents) Ready(context.Context) error {
	if snap := s.View.Current(); snap == nil || snap.Seq == 0 {
		return errCatalogNotLoaded
	}
	return nil
}

// Stop ends the snapshot poller and drains the draft and audit queues.
func (s *ServiceComponents) Stop() {
	s.cancel()
	s.wg.Wait()
	s.Compositions.Stop()
	s.Drafts.Stop()
	s.Auditor.Stop()
}

func seedCatalog(writer repository.CatalogWriter, path string) {
	seed, err := LoadCatalogSeed(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to load catalog seed")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()
	if err := SeedCatalog(ctx, writer, seed); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to seed catalog")
	}
}
