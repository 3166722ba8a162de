package repository

import (
	"context"

	"github.com/guttosm/dispatch-service/internal/domain/model"
)

// CatalogRepositoryInterface reads the stock item and vehicle catalog.
type CatalogRepositoryInterface interface {
	ListStockItems(ctx context.Context) ([]model.StockItem, error)
	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
}

// CatalogWriter seeds the catalog.
type CatalogWriter interface {
	UpsertStockItem(ctx context.Context, item model.StockItem) error
	UpsertVehicle(ctx context.Context, v model.Vehicle) error
}

// OrdersRepositoryInterface is the durable store of open orders.
type OrdersRepositoryInterface interface {
	ListOpen(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id string) (model.Order, error)
	Append(ctx context.Context, order model.Order) (string, error)
	AdjustItemQuantity(ctx context.Context, id string, index, quantity int) (model.Order, error)
	StepItemQuantity(ctx context.Context, id string, index, delta int) (model.Order, error)
	Remove(ctx context.Context, id string) error
}

// DraftMirror persists in-progress compositions keyed by session.
type DraftMirror interface {
	Save(ctx context.Context, sessionID string, c model.Composition) error
	Load(ctx context.Context, sessionID string) (model.Composition, bool, error)
	Delete(ctx context.Context, sessionID string) error
}

// AuditRepositoryInterface stores audit entries.
type AuditRepositoryInterface interface {
	Create(ctx context.Context, entry *AuditDocument) error
	CreateMany(ctx context.Context, entries []*AuditDocument) error
	Query(ctx context.Context, opts AuditQueryOptions) ([]*AuditDocument, error)
	Count(ctx context.Context, opts AuditQueryOptions) (int64, error)
}

var (
	_ CatalogRepositoryInterface = (*CatalogRepository)(nil)
	_ CatalogRepositoryInterface = (*MemoryCatalogRepository)(nil)
	_ CatalogWriter              = (*CatalogRepository)(nil)
	_ CatalogWriter              = (*MemoryCatalogRepository)(nil)
	_ OrdersRepositoryInterface  = (*MemoryOrdersRepository)(nil)
	_ OrdersRepositoryInterface  = (*OrdersRepository)(nil)
	_ DraftMirror                = (*MongoDraftMirror)(nil)
	_ DraftMirror                = (*RedisDraftMirror)(nil)
	_ DraftMirror                = (*MemoryDraftMirror)(nil)
	_ AuditRepositoryInterface   = (*AuditRepository)(nil)
)
