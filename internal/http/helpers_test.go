package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/dispatch-service/internal/composition"
	"github.com/guttosm/dispatch-service/internal/domain/dto"
	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/repository"
	"github.com/guttosm/dispatch-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testStockItems() []model.StockItem {
	return []model.StockItem{
		{SKU: "A1", Description: "205/55R16", UnitWeight: 10, UnitVolume: 0.5, UnitValue: decimal.NewFromInt(100)},
		{SKU: "B2", Description: "315/80R22.5", UnitWeight: 25, UnitVolume: 1.25, UnitValue: decimal.NewFromInt(40)},
	}
}

func testVehicles() []model.Vehicle {
	return []model.Vehicle{
		{VehicleID: "T-1", WeightCapacity: 1000, VolumeCapacity: 10, Details: model.VehicleDetails{Plates: "ABC-123", Model: "Actros"}},
		{VehicleID: "T-2", WeightCapacity: 1000, VolumeCapacity: 10},
	}
}

func testView(open ...model.Order) *composition.View {
	v := composition.NewView()
	v.Apply(composition.Snapshot{
		Seq:        1,
		Catalog:    model.NewCatalog(testStockItems(), testVehicles()),
		OpenOrders: open,
	})
	return v
}

type recordingAuditor struct {
	mu      sync.Mutex
	entries []*model.AuditEntry
}

func (r *recordingAuditor) Record(entry *model.AuditEntry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return true
}

func (r *recordingAuditor) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.ActionType
	}
	return out
}

func (r *recordingAuditor) last() *model.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return nil
	}
	return r.entries[len(r.entries)-1]
}

type testEnv struct {
	router  *gin.Engine
	view    *composition.View
	orders  repository.OrdersRepositoryInterface
	auditor *recordingAuditor
}

// newTestEnv serves real services over in-memory stores.
func newTestEnv(t *testing.T, open ...model.Order) *testEnv {
	t.Helper()
	orders := repository.NewMemoryOrdersRepository()
	for _, o := range open {
		_, err := orders.Append(context.Background(), o)
		require.NoError(t, err)
	}
	return newTestEnvWithOrders(t, orders, open...)
}

func newTestEnvWithOrders(t *testing.T, orders repository.OrdersRepositoryInterface, open ...model.Order) *testEnv {
	t.Helper()
	view := testView(open...)
	compositions := service.NewCompositionService(view, orders, nil)
	t.Cleanup(compositions.Stop)

	auditor := &recordingAuditor{}
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.EnableIdempotency = true
	cfg.Auditor = auditor

	router := NewRouter(Services{
		Compositions: compositions,
		Orders:       service.NewOrderService(orders, view),
		Catalog:      service.NewCatalogService(view),
	}, NewHealthHandler(), cfg)

	return &testEnv{router: router, view: view, orders: orders, auditor: auditor}
}

func (e *testEnv) do(method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decodeData unwraps the data field of a success envelope.
func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	return envelope.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func sampleOrder(id, vehicleID string) model.Order {
	items := testStockItems()
	return model.NewOrder(id, vehicleID, []model.LineItem{
		model.NewLineItem(items[0], 2),
		model.NewLineItem(items[1], 1),
	})
}
