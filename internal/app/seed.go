package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/dispatch-service/internal/domain/model"
	"github.com/guttosm/dispatch-service/internal/repository"
)

// CatalogSeed is the layout of a catalog seed file.
type CatalogSeed struct {
	StockItems []model.StockItem `json:"stock_items"`
	Vehicles   []model.Vehicle   `json:"vehicles"`
}

// LoadCatalogSeed reads a catalog seed file.
func LoadCatalogSeed(path string) (CatalogSeed, error) {
	var seed CatalogSeed
	raw, err := os.ReadFile(path)
	if err != nil {
		return seed, fmt.Errorf("read catalog seed: %w", err)
	}
	if err := json.Unmarshal(raw, &seed); err != nil {
		return seed, fmt.Errorf("decode catalog seed %s: %w", path, err)
	}
	return seed, nil
}

// SeedCatalog upserts every stock item and vehicle in seed. Entries without
// an id are skipped.
func SeedCatalog(ctx context.Context, writer repository.CatalogWriter, seed CatalogSeed) error {
	var items, vehicles int
	for _, item := range seed.StockItems {
		if strings.TrimSpace(item.SKU) == "" {
			continue
		}
		if err := writer.UpsertStockItem(ctx, item); err != nil {
			return fmt.Errorf("seed stock item %s: %w", item.SKU, err)
		}
		items++
	}
	for _, v := range seed.Vehicles {
		if strings.TrimSpace(v.VehicleID) == "" {
			continue
		}
		if err := writer.UpsertVehicle(ctx, v); err != nil {
			return fmt.Errorf("seed vehicle %s: %w", v.VehicleID, err)
		}
		vehicles++
	}

	log.Info().Int("stock_items", items).Int("vehicles", vehicles).Msg("Catalog seeded")
	return nil
}
