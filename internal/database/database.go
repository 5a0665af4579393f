package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolOptions tunes the connection pool. Zero values fall back to the defaults.
type PoolOptions struct {
	MaxConns int
	MaxIdle  time.Duration
	MaxLife  time.Duration
}

func (o PoolOptions) withDefaults() PoolOptions {
	if o.MaxConns <= 0 {
		o.MaxConns = DefaultMaxConnections
	}
	if o.MaxIdle <= 0 {
		o.MaxIdle = DefaultMaxConnIdle
	}
	if o.MaxLife <= 0 {
		o.MaxLife = DefaultMaxConnLife
	}
	return o
}

// NewPool creates a new PostgreSQL connection pool and verifies it with a ping
func NewPool(ctx context.Context, connString string, opts PoolOptions) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	opts = opts.withDefaults()
	maxConns := min(opts.MaxConns, math.MaxInt32)
	config.MaxConns = int32(maxConns)
	config.MinConns = min(DefaultMinConnections, config.MaxConns)
	config.MaxConnLifetime = opts.MaxLife
	config.MaxConnIdleTime = opts.MaxIdle

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase, "max_conns", maxConns)
	return pool, nil
}

// ConnString builds a postgres URL from its parts
func ConnString(user, password, host, port, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, password, host, port, dbName, sslMode)
}
