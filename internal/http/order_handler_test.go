package http

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/dispatch-service/internal/composition"
	"github.com/guttosm/dispatch-service/internal/domain/dto"
	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/service"
)

func TestOrderHandler_ListAndGet(t *testing.T) {
	env := newTestEnv(t, sampleOrder("o-1", "T-1"))

	w := env.do(http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeData[dto.OrderListResponse](t, w)
	assert.Equal(t, 1, list.Count)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, "o-1", list.Orders[0].ID)

	w = env.do(http.MethodGet, "/api/orders/o-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	order := decodeData[model.Order](t, w)
	assert.Equal(t, "T-1", order.VehicleID)
	assert.Equal(t, 45.0, order.TotalWeight)
	assert.True(t, order.TotalValue.Equal(decimal.NewFromInt(240)))

	w = env.do(http.MethodGet, "/api/orders/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeError(t, w).Error)
}

func TestOrderHandler_ListEmpty(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/orders", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"orders":[]`)
}

func TestOrderHandler_AdjustItem(t *testing.T) {
	tests := []struct {
		name             string
		path             string
		body             interface{}
		expectedStatus   int
		expectedQuantity int
		expectedWeight   float64
		expectedAction   string
	}{
		{
			name:             "absolute quantity",
			path:             "/api/orders/o-1/items/0",
			body:             dto.AdjustQuantityRequest{Quantity: 5},
			expectedStatus:   http.StatusOK,
			expectedQuantity: 5,
			expectedWeight:   75,
			expectedAction:   service.AuditActionAdjustQuantity,
		},
		{
			name:             "step up",
			path:             "/api/orders/o-1/items/1",
			body:             dto.AdjustQuantityRequest{Delta: 1},
			expectedStatus:   http.StatusOK,
			expectedQuantity: 2,
			expectedWeight:   70,
			expectedAction:   service.AuditActionStepQuantity,
		},
		{
			name:             "step below one is a no-op",
			path:             "/api/orders/o-1/items/1",
			body:             dto.AdjustQuantityRequest{Delta: -1},
			expectedStatus:   http.StatusOK,
			expectedQuantity: 1,
			expectedWeight:   45,
			expectedAction:   service.AuditActionStepQuantity,
		},
		{
			name:           "neither quantity nor delta",
			path:           "/api/orders/o-1/items/0",
			body:           map[string]int{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "index out of range",
			path:           "/api/orders/o-1/items/7",
			body:           dto.AdjustQuantityRequest{Quantity: 2},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown order",
			path:           "/api/orders/o-404/items/0",
			body:           dto.AdjustQuantityRequest{Quantity: 2},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, sampleOrder("o-1", "T-1"))

			w := env.do(http.MethodPatch, tt.path, tt.body)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				assert.Empty(t, env.auditor.actions())
				return
			}
			order := decodeData[model.Order](t, w)
			index := 0
			if tt.path == "/api/orders/o-1/items/1" {
				index = 1
			}
			assert.Equal(t, tt.expectedQuantity, order.Items[index].Quantity)
			assert.Equal(t, tt.expectedWeight, order.TotalWeight)
			assert.Equal(t, tt.expectedWeight, env.view.OpenOrders()[0].TotalWeight, "view follows the store")

			entry := env.auditor.last()
			require.NotNil(t, entry)
			assert.Equal(t, tt.expectedAction, entry.ActionType)
			assert.Equal(t, "o-1", entry.OrderID)
			assert.Equal(t, "T-1", entry.VehicleID)
		})
	}
}

func TestOrderHandler_CancelReleasesVehicle(t *testing.T) {
	env := newTestEnv(t, sampleOrder("o-1", "T-1"))
	require.False(t, composition.IsAvailable("T-1", env.view.OpenOrders()))

	w := env.do(http.MethodDelete, "/api/orders/o-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, composition.IsAvailable("T-1", env.view.OpenOrders()))
	assert.Equal(t, service.AuditActionCancel, env.auditor.last().ActionType)

	w = env.do(http.MethodDelete, "/api/orders/o-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The freed vehicle can be composed onto again.
	env.do(http.MethodPut, dock+"/vehicle", dto.SelectVehicleRequest{VehicleID: "T-1"})
	env.do(http.MethodPost, dock+"/items", dto.AddItemRequest{SKU: "B2", Quantity: 1})
	w = env.do(http.MethodPost, dock+"/confirm", nil)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
