// Package main is the entry point for the dispatch-service application.
//
// @title           Dispatch Service API
// @version         1.0.0
// @description     API for composing shipment orders of tires onto vehicles.
//
//	Each session composes one order against a vehicle's weight and volume capacity.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/dispatch-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Compositions
// @tag.description Per-session order composition
//
// @tag.name        Orders
// @tag.description Confirmed shipment orders
//
// @tag.name        Catalog
// @tag.description Stock items and vehicles
//
// @tag.name        Audit
// @tag.description Audit trail queries
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/dispatch-service/docs" // swagger docs

	"github.com/guttosm/dispatch-service/config"
	"github.com/guttosm/dispatch-service/internal/app"
)

func main() {
	cfg := config.Load()

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port, cfg.Server.RequestTimeout)
	server.OnShutdown(application.Close)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
