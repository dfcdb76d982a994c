package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/wordloop/internal/config"
	"github.com/at-ishikawa/wordloop/internal/database"
	"github.com/at-ishikawa/wordloop/internal/storage"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// openRepository opens the word store selected by storage.driver.
// The returned function releases it.
func openRepository(ctx context.Context, cfg *config.Config) (storage.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverMySQL:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open() > %w", err)
		}
		slog.Debug("opened a database", "driver", cfg.Storage.Driver, "host", cfg.Database.Host, "database", cfg.Database.Database)
		return storage.NewDBRepository(db), func() { _ = db.Close() }, nil
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.Database.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("database.OpenSQLite() > %w", err)
		}
		if err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("database.Migrate() > %w", err)
		}
		slog.Debug("opened a database", "driver", cfg.Storage.Driver, "path", cfg.Database.SQLitePath)
		return storage.NewDBRepository(db), func() { _ = db.Close() }, nil
	}
	slog.Debug("opened a word file", "path", cfg.Storage.YAMLFile)
	return storage.NewYAMLRepository(cfg.Storage.YAMLFile), func() {}, nil
}
