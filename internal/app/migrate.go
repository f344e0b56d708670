package app

import (
	"fmt"

	goose "github.com/pressly/goose/v3"

	"github.com/dhargitai/stock-search-app/config"
	"github.com/dhargitai/stock-search-app/internal/logger"
	"github.com/dhargitai/stock-search-app/migrations"
)

// RunMigrations applies all pending goose migrations from the embedded
// filesystem and closes the connection when done.
func RunMigrations() error {
	db, err := postgresOpener(config.AppConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize postgres: %w", err)
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	logger.L().Info().Int64("version", version).Msg("database migrated")

	return nil
}
