// Package backend opens the storage slot selected by configuration.
package backend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"todo/internal/backend/filestore"
	"todo/internal/backend/sqlitestore"
	"todo/internal/config"
	"todo/internal/service"
)

// Open returns the slot for cfg.Backend.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (service.Slot, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		return filestore.New(cfg.DataDir, logger), nil
	case config.BackendSQLite:
		return sqlitestore.New(ctx, cfg.DatabasePath(), logger)
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}

// NewStore opens the configured slot and wraps it in a task store.
// The store is not yet initialized.
func NewStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*service.Store, error) {
	slot, err := Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	return service.New(slot, service.Options{
		SeedText:  cfg.SeedText,
		KeepEmpty: cfg.KeepEmpty,
		Logger:    &logger,
	}), nil
}
