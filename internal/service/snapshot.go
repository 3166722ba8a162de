package service

import (
	"context"
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"github.com/guttosm/dispatch-service/internal/composition"
	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/logger"
	"github.com/guttosm/dispatch-service/internal/metrics"
	"github.com/guttosm/dispatch-service/internal/repository"
)

// SnapshotPoller reads the catalog and the open order list from their stores.
type SnapshotPoller struct {
	catalog  repository.CatalogRepositoryInterface
	orders   repository.OrdersRepositoryInterface
	interval time.Duration
	seq      atomic.Uint64
}

// NewSnapshotPoller creates a poller reading every interval. A non-positive
// interval makes Snapshots yield a single read.
func NewSnapshotPoller(catalog repository.CatalogRepositoryInterface, orders repository.OrdersRepositoryInterface, interval time.Duration) *SnapshotPoller {
	return &SnapshotPoller{
		catalog:  catalog,
		orders:   orders,
		interval: interval,
	}
}

// Read takes one snapshot. Sequence numbers increase across every read made
// by this poller.
func (p *SnapshotPoller) Read(ctx context.Context) (composition.Snapshot, error) {
	start := time.Now()
	snap, err := p.read(ctx)
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.RecordSnapshotRefresh(time.Since(start), result)
	return snap, err
}

func (p *SnapshotPoller) read(ctx context.Context) (composition.Snapshot, error) {
	items, err := p.catalog.ListStockItems(ctx)
	if err != nil {
		return composition.Snapshot{}, composition.NewCollaboratorError("read stock items", err)
	}
	vehicles, err := p.catalog.ListVehicles(ctx)
	if err != nil {
		return composition.Snapshot{}, composition.NewCollaboratorError("read vehicles", err)
	}
	open, err := p.orders.ListOpen(ctx)
	if err != nil {
		return composition.Snapshot{}, composition.NewCollaboratorError("list open orders", err)
	}

	return composition.Snapshot{
		Seq:        p.seq.Add(1),
		Catalog:    model.NewCatalog(items, vehicles),
		OpenOrders: open,
		TakenAt:    time.Now().UTC(),
	}, nil
}

// Snapshots returns a lazy sequence that reads immediately and then once per
// interval until ctx is done or the consumer stops. Failed reads are logged
// and skipped. Each call starts a fresh sequence.
func (p *SnapshotPoller) Snapshots(ctx context.Context) iter.Seq[composition.Snapshot] {
	return func(yield func(composition.Snapshot) bool) {
		var ticks <-chan time.Time
		if p.interval > 0 {
			ticker := time.NewTicker(p.interval)
			defer ticker.Stop()
			ticks = ticker.C
		}

		for {
			if ctx.Err() != nil {
				return
			}
			snap, err := p.Read(ctx)
			if err != nil {
				log := logger.Logger()
				log.Warn().Err(err).Msg("Snapshot refresh failed, keeping previous view")
			} else if !yield(snap) {
				return
			}

			if ticks == nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-ticks:
			}
		}
	}
}

// Refresh applies a single snapshot to view.
func (p *SnapshotPoller) Refresh(ctx context.Context, view *composition.View) error {
	snap, err := p.Read(ctx)
	if err != nil {
		return fmt.Errorf("refresh snapshot: %w", err)
	}
	view.Apply(snap)
	return nil
}

// Run keeps view current until ctx is done and returns how many snapshots
// were applied.
func (p *SnapshotPoller) Run(ctx context.Context, view *composition.View) int {
	return view.Follow(p.Snapshots(ctx))
}
