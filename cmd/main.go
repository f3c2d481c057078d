// Package main is the entry point for the storefront-service application.
//
// @title           Storefront Service API
// @version         1.0.0
// @description     API for the bakery storefront: browse the catalog, manage a session cart, and build custom orders through a guided wizard.
//
//	All cart and order state lives in an in-memory session identified by the X-Session-ID header.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/doughdesk/storefront-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  SessionAuth
// @in                          header
// @name                        X-Session-ID
// @description                 Session identifier returned by POST /api/sessions. When token auth is enabled, send the session token as a Bearer token instead.
//
// @tag.name        Sessions
// @tag.description Session lifecycle operations
//
// @tag.name        Catalog
// @tag.description Catalog browsing operations
//
// @tag.name        Cart
// @tag.description Cart ledger operations
//
// @tag.name        Orders
// @tag.description Custom order wizard operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/doughdesk/storefront-service/docs" // swagger docs

	"github.com/doughdesk/storefront-service/config"
	"github.com/doughdesk/storefront-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
