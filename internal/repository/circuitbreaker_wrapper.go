package repository

import (
	"context"
	"errors"

	"github.com/guttosm/dispatch-service/internal/circuitbreaker"
	"github.com/guttosm/dispatch-service/internal/domain/model"
)

// DomainErrors are store answers that must not trip a breaker.
var DomainErrors = []error{
	model.ErrOrderNotFound,
	model.ErrVehicleAssigned,
	model.ErrVersionConflict,
	model.ErrLineItemIndex,
}

func execute[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = fn()
		return cbErr
	})
	return result, err
}

// CatalogRepositoryWithCircuitBreaker wraps catalog reads with circuit breaker protection.
type CatalogRepositoryWithCircuitBreaker struct {
	repo           CatalogRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewCatalogRepositoryWithCircuitBreaker(repo CatalogRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *CatalogRepositoryWithCircuitBreaker) ListStockItems(ctx context.Context) ([]model.StockItem, error) {
	return execute(ctx, r.circuitBreaker, func() ([]model.StockItem, error) {
		return r.repo.ListStockItems(ctx)
	})
}

func (r *CatalogRepositoryWithCircuitBreaker) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	return execute(ctx, r.circuitBreaker, func() ([]model.Vehicle, error) {
		return r.repo.ListVehicles(ctx)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CatalogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// OrdersRepositoryWithCircuitBreaker wraps the order store with circuit breaker protection.
type OrdersRepositoryWithCircuitBreaker struct {
	repo           OrdersRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrdersRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewOrdersRepositoryWithCircuitBreaker(repo OrdersRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *OrdersRepositoryWithCircuitBreaker {
	return &OrdersRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

func (r *OrdersRepositoryWithCircuitBreaker) ListOpen(ctx context.Context) ([]model.Order, error) {
	return execute(ctx, r.circuitBreaker, func() ([]model.Order, error) {
		return r.repo.ListOpen(ctx)
	})
}

func (r *OrdersRepositoryWithCircuitBreaker) Get(ctx context.Context, id string) (model.Order, error) {
	return execute(ctx, r.circuitBreaker, func() (model.Order, error) {
		return r.repo.Get(ctx, id)
	})
}

func (r *OrdersRepositoryWithCircuitBreaker) Append(ctx context.Context, order model.Order) (string, error) {
	return execute(ctx, r.circuitBreaker, func() (string, error) {
		return r.repo.Append(ctx, order)
	})
}

func (r *OrdersRepositoryWithCircuitBreaker) AdjustItemQuantity(ctx context.Context, id string, index, quantity int) (model.Order, error) {
	return execute(ctx, r.circuitBreaker, func() (model.Order, error) {
		return r.repo.AdjustItemQuantity(ctx, id, index, quantity)
	})
}

func (r *OrdersRepositoryWithCircuitBreaker) StepItemQuantity(ctx context.Context, id string, index, delta int) (model.Order, error) {
	return execute(ctx, r.circuitBreaker, func() (model.Order, error) {
		return r.repo.StepItemQuantity(ctx, id, index, delta)
	})
}

func (r *OrdersRepositoryWithCircuitBreaker) Remove(ctx context.Context, id string) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Remove(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OrdersRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// DraftMirrorWithCircuitBreaker wraps a draft mirror with circuit breaker protection.
type DraftMirrorWithCircuitBreaker struct {
	mirror         DraftMirror
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewDraftMirrorWithCircuitBreaker creates a new mirror wrapper with circuit breaker.
func NewDraftMirrorWithCircuitBreaker(mirror DraftMirror, cb *circuitbreaker.CircuitBreaker) *DraftMirrorWithCircuitBreaker {
	return &DraftMirrorWithCircuitBreaker{mirror: mirror, circuitBreaker: cb}
}

func (m *DraftMirrorWithCircuitBreaker) Save(ctx context.Context, sessionID string, c model.Composition) error {
	return m.circuitBreaker.Execute(ctx, func() error {
		return m.mirror.Save(ctx, sessionID, c)
	})
}

func (m *DraftMirrorWithCircuitBreaker) Load(ctx context.Context, sessionID string) (model.Composition, bool, error) {
	var (
		c     model.Composition
		found bool
	)
	err := m.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		c, found, cbErr = m.mirror.Load(ctx, sessionID)
		return cbErr
	})
	return c, found, err
}

func (m *DraftMirrorWithCircuitBreaker) Delete(ctx context.Context, sessionID string) error {
	return m.circuitBreaker.Execute(ctx, func() error {
		return m.mirror.Delete(ctx, sessionID)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (m *DraftMirrorWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return m.circuitBreaker
}

// AuditRepositoryWithCircuitBreaker wraps AuditRepository with circuit breaker protection.
type AuditRepositoryWithCircuitBreaker struct {
	repo           AuditRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewAuditRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewAuditRepositoryWithCircuitBreaker(repo AuditRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *AuditRepositoryWithCircuitBreaker {
	return &AuditRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores one entry. An open circuit drops the entry silently.
func (r *AuditRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *AuditDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores entries in bulk. An open circuit drops them silently.
func (r *AuditRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*AuditDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

func (r *AuditRepositoryWithCircuitBreaker) Query(ctx context.Context, opts AuditQueryOptions) ([]*AuditDocument, error) {
	return execute(ctx, r.circuitBreaker, func() ([]*AuditDocument, error) {
		return r.repo.Query(ctx, opts)
	})
}

func (r *AuditRepositoryWithCircuitBreaker) Count(ctx context.Context, opts AuditQueryOptions) (int64, error) {
	return execute(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *AuditRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

var (
	_ CatalogRepositoryInterface = (*CatalogRepositoryWithCircuitBreaker)(nil)
	_ OrdersRepositoryInterface  = (*OrdersRepositoryWithCircuitBreaker)(nil)
	_ DraftMirror                = (*DraftMirrorWithCircuitBreaker)(nil)
	_ AuditRepositoryInterface   = (*AuditRepositoryWithCircuitBreaker)(nil)
)
