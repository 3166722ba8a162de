package service

import (
	"context"
	"errors"

	"github.com/guttosm/dispatch-service/internal/composition"
	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/metrics"
	"github.com/guttosm/dispatch-service/internal/repository"
)

// OrderService manages confirmed orders.
type OrderService interface {
	List(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id string) (model.Order, error)
	AdjustItemQuantity(ctx context.Context, id string, index, quantity int) (model.Order, error)
	StepItemQuantity(ctx context.Context, id string, index, delta int) (model.Order, error)
	Cancel(ctx context.Context, id string) error
}

// OrderServiceImpl implements OrderService. Every change is written through
// to the shared view so sessions see it before the next snapshot.
type OrderServiceImpl struct {
	orders repository.OrdersRepositoryInterface
	view   *composition.View
}

// NewOrderService creates an order service.
func NewOrderService(orders repository.OrdersRepositoryInterface, view *composition.View) OrderService {
	if orders == nil {
		return &OrderServiceImpl{view: view}
	}
	return &OrderServiceImpl{orders: orders, view: view}
}

func (s *OrderServiceImpl) List(ctx context.Context) ([]model.Order, error) {
	if s.orders == nil {
		return nil, ErrRepositoryNotConfigured
	}
	orders, err := s.orders.ListOpen(ctx)
	if err != nil {
		return nil, storeError("list open orders", err)
	}
	return orders, nil
}

func (s *OrderServiceImpl) Get(ctx context.Context, id string) (model.Order, error) {
	if s.orders == nil {
		return model.Order{}, ErrRepositoryNotConfigured
	}
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return model.Order{}, storeError("get order", err)
	}
	return order, nil
}

// AdjustItemQuantity sets one line's quantity. Totals are recomputed in the
// same store write.
func (s *OrderServiceImpl) AdjustItemQuantity(ctx context.Context, id string, index, quantity int) (model.Order, error) {
	if s.orders == nil {
		return model.Order{}, ErrRepositoryNotConfigured
	}
	if quantity < 1 {
		return model.Order{}, ErrInvalidQuantity
	}
	order, err := s.orders.AdjustItemQuantity(ctx, id, index, quantity)
	return s.written("adjust_quantity", order, err)
}

// StepItemQuantity moves one line's quantity by delta. Stepping below one is
// a no-op.
func (s *OrderServiceImpl) StepItemQuantity(ctx context.Context, id string, index, delta int) (model.Order, error) {
	if s.orders == nil {
		return model.Order{}, ErrRepositoryNotConfigured
	}
	order, err := s.orders.StepItemQuantity(ctx, id, index, delta)
	return s.written("step_quantity", order, err)
}

// Cancel removes the order and frees its vehicle.
func (s *OrderServiceImpl) Cancel(ctx context.Context, id string) error {
	if s.orders == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.orders.Remove(ctx, id); err != nil {
		metrics.RecordOrderOperation("cancel", "error")
		return storeError("remove order", err)
	}
	s.view.RemoveOpenOrder(id)
	metrics.RecordOrderOperation("cancel", "success")
	return nil
}

func (s *OrderServiceImpl) written(op string, order model.Order, err error) (model.Order, error) {
	if err != nil {
		metrics.RecordOrderOperation(op, "error")
		return model.Order{}, storeError(op, err)
	}
	s.view.AddOpenOrder(order)
	metrics.RecordOrderOperation(op, "success")
	return order, nil
}

// storeError passes domain answers through and wraps everything else as an
// unavailable collaborator.
func storeError(op string, err error) error {
	for _, domainErr := range repository.DomainErrors {
		if errors.Is(err, domainErr) {
			return err
		}
	}
	return composition.NewCollaboratorError(op, err)
}
