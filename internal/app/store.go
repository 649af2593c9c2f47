package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daniilsolovey/editions/config"
	"github.com/daniilsolovey/editions/internal/db"
	"github.com/go-pg/pg/v10"
)

// NewStore opens the record store selected by cfg.Store.Backend.
func NewStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (db.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendFile, "":
		logger.Info("using file store", "path", cfg.Store.Path)
		return db.NewJSONStore(cfg.Store.Path, logger), nil
	case config.BackendPostgres:
		return newPGStore(ctx, cfg.Database, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func newPGStore(ctx context.Context, cfg config.Database, logger *slog.Logger) (*db.PGStore, error) {
	if cfg.Migrate {
		if err := db.Migrate(ctx, cfg.URL); err != nil {
			return nil, err
		}
		logger.Info("database migrated")
	}

	opt, err := cfg.PGOptions()
	if err != nil {
		return nil, err
	}

	dbc := pg.Connect(opt)
	if cfg.LogQueries {
		dbc.AddQueryHook(db.NewQueryHook(logger))
	}

	store := db.NewPGStore(dbc)
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("using postgres store", "addr", opt.Addr, "database", opt.Database)
	return store, nil
}
