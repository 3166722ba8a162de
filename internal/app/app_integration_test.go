//go:build integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/dispatch-service/config"
	"github.com/guttosm/dispatch-service/internal/domain/model"
)

func TestInitializeApp_Integration(t *testing.T) {
	t.Parallel()

	dbCfg := integrationDatabaseConfig(t)
	seeded := InitializeDatabase(dbCfg, time.Hour)
	require.NotNil(t, seeded)
	ctx := context.Background()
	require.NoError(t, SeedCatalog(ctx, seeded.CatalogWriter, CatalogSeed{
		StockItems: []model.StockItem{{SKU: "A1", UnitWeight: 10, UnitVolume: 0.5, UnitValue: decimal.NewFromInt(100)}},
		Vehicles:   []model.Vehicle{{VehicleID: "T-1", WeightCapacity: 1000, VolumeCapacity: 10}},
	}))
	seeded.Close(ctx)

	cfg := config.Config{
		Server: config.ServerConfig{
			Port:              "8080",
			RateWindow:        time.Minute,
			RequestTimeout:    10 * time.Second,
			EnableIdempotency: true,
		},
		Database: dbCfg,
		Dispatch: config.DispatchConfig{
			SnapshotInterval:  time.Hour,
			DraftSyncWorkers:  1,
			DraftSyncBuffer:   16,
			AuditBufferSize:   16,
			AuditWorkers:      1,
			AuditWriteTimeout: 5 * time.Second,
		},
		Redis:    config.RedisConfig{DraftTTL: time.Hour},
		Sessions: config.SessionConfig{Capacity: 100, IdleTTL: time.Hour, Shards: 2},
	}

	application := InitializeApp(cfg)
	require.NotNil(t, application)
	require.NotNil(t, application.db)
	t.Cleanup(application.Close)

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		application.Router.ServeHTTP(w, req)
		return w
	}

	w := serve(http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mongodb_orders_circuit")

	require.Equal(t, http.StatusOK, serve(http.MethodPut, "/api/compositions/dock-1/vehicle", `{"vehicle_id":"T-1"}`).Code)
	require.Equal(t, http.StatusOK, serve(http.MethodPost, "/api/compositions/dock-1/items", `{"sku":"A1","quantity":2}`).Code)
	require.Equal(t, http.StatusCreated, serve(http.MethodPost, "/api/compositions/dock-1/confirm", "").Code)

	w = serve(http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"vehicle_id":"T-1"`)

	// the audit route exists when MongoDB is available
	assert.Eventually(t, func() bool {
		w := serve(http.MethodGet, "/api/audit?action=confirm", "")
		return w.Code == http.StatusOK && strings.Contains(w.Body.String(), `"confirm"`)
	}, 5*time.Second, 100*time.Millisecond)
}
