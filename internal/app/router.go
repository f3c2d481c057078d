// Package app provides router configuration.
package app

import (
	"github.com/doughdesk/storefront-service/config"
	"github.com/doughdesk/storefront-service/internal/domain/model"
	"github.com/doughdesk/storefront-service/internal/http"
	"github.com/doughdesk/storefront-service/internal/repository"
	"github.com/doughdesk/storefront-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	// Catalog: MongoDB-backed when available, the built-in catalog otherwise
	var catalogRepo repository.CatalogRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		catalogRepo = dbComponents.CatalogRepo
		loggingService = dbComponents.LoggingService
	} else {
		catalogRepo = repository.NewInMemoryCatalogRepository(model.DefaultCatalog())
	}

	var catalogOpts []service.CatalogOption
	if cfg.Catalog.CacheSize > 0 {
		catalogOpts = append(catalogOpts, service.WithQueryCache(cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL))
	}
	catalogService := service.NewCatalogService(catalogRepo, catalogOpts...)

	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if dbComponents != nil {
		if dbComponents.CatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_catalog", dbComponents.CatalogCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		CatalogService:    catalogService,
		SessionStore:      serviceComponents.SessionStore,
		SessionTokens:     serviceComponents.SessionTokens,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
