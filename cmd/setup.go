package cmd

import (
	"fmt"

	"roster-sync/core/config"
	"roster-sync/core/database"
	"roster-sync/core/logger"
	"roster-sync/core/remote"
	"roster-sync/core/storage"
	"roster-sync/feature/roster"
	"roster-sync/feature/roster/faction"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// setup loads configuration and initializes the logger, shared by every
// subcommand.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, l, nil
}

// buildFeature wires the roster feature from configuration. The database
// connection is optional: when it fails the database provider degrades to
// the static fallback at run time.
func buildFeature(cfg *config.Config, l *zap.Logger) (*roster.Feature, error) {
	if !cfg.Roster.IsValidSource() {
		return nil, fmt.Errorf("invalid roster source %q (want %s or %s)",
			cfg.Roster.Source, roster.SourceDatabase, roster.SourceStatic)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	var db *gorm.DB
	if cfg.Roster.Source == roster.SourceDatabase {
		if conn, err := database.Connect(cfg.Database); err != nil {
			l.Warn("Reference database connection failed", zap.Error(err))
		} else {
			db = conn
			l.Info("Connected to reference database")
		}
	}

	publisher := remote.NewClient(cfg.Remote)

	return roster.NewFeature(client, cfg.Storage.Bucket, cfg.Storage.Prefix, db, publisher, cfg.Roster, l), nil
}

// resolveFaction normalizes a faction argument and rejects unknown keys.
func resolveFaction(arg string) (string, error) {
	key := faction.Normalize(arg)
	if !faction.Known(key) {
		return "", fmt.Errorf("unknown faction %q (valid: %v)", arg, faction.All())
	}
	return key, nil
}
