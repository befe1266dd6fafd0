package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"example.com/denine-prints/internal/config"
	domcart "example.com/denine-prints/internal/domain/cart"
	"example.com/denine-prints/internal/infra/persistence/file"
	"example.com/denine-prints/internal/infra/persistence/memory"
	"example.com/denine-prints/internal/infra/persistence/mysql"
	"example.com/denine-prints/internal/infra/persistence/postgres"
	"example.com/denine-prints/internal/infra/persistence/sqlite"
)

// openStorage builds the cart storage named by cfg. The returned close
// function is never nil.
func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (domcart.Storage, func(), error) {
	noop := func() {}
	logger.Info("opening cart storage", zap.String("driver", cfg.Storage.Driver))

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return memory.NewStorage(), noop, nil

	case config.DriverFile:
		s, err := file.NewStorage(cfg.Storage.Dir)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	case config.DriverSQLite:
		path := cfg.Storage.DSN
		if path == "" {
			path = filepath.Join(cfg.Storage.Dir, "cart.db")
		}
		db, err := sqlite.Open(path)
		if err != nil {
			return nil, noop, err
		}
		s := sqlite.NewCartStorage(db)
		if err := s.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return s, func() { _ = db.Close() }, nil

	case config.DriverMySQL:
		db, err := mysql.Open(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, noop, err
		}
		s := mysql.NewCartStorage(db)
		if err := s.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return s, func() { _ = db.Close() }, nil

	case config.DriverPostgres:
		pool, err := postgres.Open(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, noop, err
		}
		s := postgres.NewCartStorage(pool)
		if err := s.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return s, pool.Close, nil

	default:
		return nil, noop, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Storage.Driver)
	}
}
