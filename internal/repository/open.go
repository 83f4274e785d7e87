package repository

import (
	"fmt"

	"fourdx-backend/internal/config"
	"fourdx-backend/internal/database"
	"fourdx-backend/internal/supabase"

	"github.com/sirupsen/logrus"
)

// Open builds the Store selected by cfg.StoreDriver. The returned close
// function releases the backend's connections.
func Open(cfg *config.Config) (*Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := database.Initialize(cfg.DatabaseURL, &database.Options{SkipAutoMigrate: !cfg.DatabaseAutoMigrate})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to access database pool: %w", err)
		}
		logrus.WithField("auto_migrate", cfg.DatabaseAutoMigrate).Info("Using postgres store")
		return NewGormStore(db), sqlDB.Close, nil

	case config.DriverSupabase:
		client, err := supabase.New(supabase.Config{
			URL:     cfg.SupabaseURL,
			APIKey:  cfg.SupabaseAPIKey,
			Timeout: cfg.SupabaseTimeout(),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create supabase client: %w", err)
		}
		logrus.WithField("url", cfg.SupabaseURL).Info("Using supabase store")
		return NewRestStore(client), noop, nil

	case config.DriverMemory:
		logrus.Warn("Using in-memory store; data is lost on restart")
		return NewMemoryStore(), noop, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
