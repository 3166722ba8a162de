// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/repository"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListStockItems(ctx context.Context) ([]model.StockItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StockItem), args.Error(1)
}

func (m *MockCatalogRepository) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

type MockOrdersRepository struct {
	mock.Mock
}

func (m *MockOrdersRepository) ListOpen(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrdersRepository) Get(ctx context.Context, id string) (model.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrdersRepository) Append(ctx context.Context, order model.Order) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

func (m *MockOrdersRepository) AdjustItemQuantity(ctx context.Context, id string, index, quantity int) (model.Order, error) {
	args := m.Called(ctx, id, index, quantity)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrdersRepository) StepItemQuantity(ctx context.Context, id string, index, delta int) (model.Order, error) {
	args := m.Called(ctx, id, index, delta)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockOrdersRepository) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDraftMirror struct {
	mock.Mock
}

func (m *MockDraftMirror) Save(ctx context.Context, sessionID string, c model.Composition) error {
	args := m.Called(ctx, sessionID, c)
	return args.Error(0)
}

func (m *MockDraftMirror) Load(ctx context.Context, sessionID string) (model.Composition, bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(model.Composition), args.Bool(1), args.Error(2)
}

func (m *MockDraftMirror) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Create(ctx context.Context, entry *repository.AuditDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) CreateMany(ctx context.Context, entries []*repository.AuditDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockAuditRepository) Query(ctx context.Context, opts repository.AuditQueryOptions) ([]*repository.AuditDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.AuditDocument), args.Error(1)
}

func (m *MockAuditRepository) Count(ctx context.Context, opts repository.AuditQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

var (
	_ repository.CatalogRepositoryInterface = (*MockCatalogRepository)(nil)
	_ repository.OrdersRepositoryInterface  = (*MockOrdersRepository)(nil)
	_ repository.DraftMirror                = (*MockDraftMirror)(nil)
	_ repository.AuditRepositoryInterface   = (*MockAuditRepository)(nil)
)
