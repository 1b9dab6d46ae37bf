package cmd

import (
	"context"
	"fmt"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/logger"
	"inventory-manager/feature/inventory"

	"go.uber.org/zap"
)

// appContext bundles the explicitly constructed collaborators every command
// needs: configuration, logger and the inventory service over an open catalog.
type appContext struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *inventory.Service
}

// setupApp loads configuration, builds the logger, opens the catalog database
// and migrates the schema. Commands call this instead of sharing globals.
func setupApp(ctx context.Context) (*appContext, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	store := inventory.NewStore(db)
	if err := store.Migrate(ctx); err != nil {
		return nil, err
	}

	return &appContext{
		cfg:     cfg,
		logger:  l,
		service: inventory.NewService(store, l),
	}, nil
}
