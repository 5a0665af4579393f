package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PackOpener_Go/internal/collection"
	"github.com/osse101/PackOpener_Go/internal/config"
	"github.com/osse101/PackOpener_Go/internal/database"
	"github.com/osse101/PackOpener_Go/internal/database/postgres"
	"github.com/osse101/PackOpener_Go/internal/repository"
)

// CollectionStore is the repository the collection service writes to.
// Pool is nil on the memory backend.
type CollectionStore struct {
	Repo    repository.Collection
	Pool    *pgxpool.Pool
	Backend string
}

// HealthPool returns the pool as a database.Pool, or a nil interface on the memory backend
func (s *CollectionStore) HealthPool() database.Pool {
	if s.Pool == nil {
		return nil
	}
	return s.Pool
}

// Close releases the database pool if there is one
func (s *CollectionStore) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// InitializeCollectionStore picks the repository for cfg.StorageBackend.
// The postgres backend connects and applies pending migrations before returning.
func InitializeCollectionStore(ctx context.Context, cfg *config.Config) (*CollectionStore, error) {
	switch {
	case cfg.StorageBackend == config.StorageBackendMemory:
		slog.Info(LogMsgStorageReady, "backend", collection.BackendMemory)
		return &CollectionStore{
			Repo:    collection.NewMemoryRepository(),
			Backend: collection.BackendMemory,
		}, nil

	case cfg.UsesPostgres():
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
			MaxConns: cfg.DBMaxConns,
			MaxIdle:  cfg.DBMaxConnIdleTime,
			MaxLife:  cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}

		if err := database.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied, "dir", cfg.MigrationsDir)
		slog.Info(LogMsgStorageReady, "backend", collection.BackendPostgres)

		return &CollectionStore{
			Repo:    postgres.NewCollectionRepository(pool),
			Pool:    pool,
			Backend: collection.BackendPostgres,
		}, nil
	}

	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StorageBackend)
}
