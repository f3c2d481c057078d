// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/doughdesk/storefront-service/config"
	"github.com/doughdesk/storefront-service/internal/circuitbreaker"
	"github.com/doughdesk/storefront-service/internal/domain/model"
	"github.com/doughdesk/storefront-service/internal/repository"
	"github.com/doughdesk/storefront-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	CatalogRepo           repository.CatalogRepositoryInterface
	LoggingService        service.LoggingService
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker    *circuitbreaker.CircuitBreaker
	DB                    *repository.MongoDB
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	catalogCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-catalog",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	catalogRepo := repository.NewCatalogRepository(db)
	catalogRepoWithCB := repository.NewCatalogRepositoryWithCircuitBreaker(catalogRepo, catalogCB)

	// Seed the catalog if the collection is empty
	if err := seedCatalog(catalogRepo); err != nil {
		log.Warn().Err(err).Msg("Failed to seed catalog")
	}

	return &DatabaseComponents{
		CatalogRepo:           catalogRepoWithCB,
		LoggingService:        loggingService,
		CatalogCircuitBreaker: catalogCB,
		LogsCircuitBreaker:    logsCB,
		DB:                    db,
	}
}

// catalogSeeder is the slice of the catalog repository needed for seeding.
type catalogSeeder interface {
	Count(ctx context.Context) (int64, error)
	ReplaceAll(ctx context.Context, items []model.CatalogItem) error
}

// seedCatalog writes the built-in catalog when none has been stored yet.
func seedCatalog(repo catalogSeeder) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	if count == 0 {
		items := model.DefaultCatalog()
		if err := repo.ReplaceAll(ctx, items); err != nil {
			return err
		}
		log.Info().Int("items", len(items)).Msg("Seeded default catalog")
	}

	return nil
}
