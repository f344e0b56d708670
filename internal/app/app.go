package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/dhargitai/stock-search-app/config"
	"github.com/dhargitai/stock-search-app/internal/alphavantage"
	"github.com/dhargitai/stock-search-app/internal/api"
	"github.com/dhargitai/stock-search-app/internal/logger"
	"github.com/dhargitai/stock-search-app/internal/service"
	"github.com/dhargitai/stock-search-app/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer and the Alpha Vantage client.
//   - Creates the in-memory caches and the periodic sweep job.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (DB connection, sweeper).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Repository layer (watchlist, users, sessions)
	repo := storage.NewRepository(db)

	// Market data client and the caches in front of it
	avClient := alphavantage.NewClient(cfg.AlphaVantage)
	caches := service.NewCaches()

	// Service layer (business logic)
	stocks := service.NewStockService(avClient, caches)
	watchlist := service.NewWatchlistService(repo)
	users := service.NewUserService(repo)

	// HTTP handler layer; watchlist routes authenticate against the
	// sessions table via the repository.
	handler := api.NewHandler(stocks, watchlist, users)
	router := api.NewRouter(handler, repo.GetSessionUser)

	// Register health and readiness probes
	api.NewHealthHandler().
		AddCheck("postgres", db.Ping).
		Register(router)

	// Periodic cache sweep so expired entries do not pile up between reads.
	sweeper := cron.New()
	spec := fmt.Sprintf("@every %s", cfg.Cache.SweepInterval)
	if _, err := sweeper.AddFunc(spec, caches.Sweep); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to schedule cache sweep: %w", err)
	}
	sweeper.Start()
	logger.L().Info().Str("interval", cfg.Cache.SweepInterval.String()).Msg("cache sweeper started")

	// Cleanup resources on shutdown
	cleanup := func() {
		ctx := sweeper.Stop()
		<-ctx.Done()
		_ = db.Close()
	}

	return router, cleanup, nil
}
