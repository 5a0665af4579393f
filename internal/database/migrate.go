package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// MigrationState is one migration file and whether it has been applied
type MigrationState struct {
	Version   int64     `json:"version"`
	Path      string    `json:"path"`
	Applied   bool      `json:"applied"`
	AppliedAt time.Time `json:"applied_at,omitempty"`
}

// Migrator applies the goose SQL migrations in a directory over an existing pool
type Migrator struct {
	db       *sql.DB
	provider *goose.Provider
}

// NewMigrator opens a database/sql handle on the pool for goose
func NewMigrator(pool *pgxpool.Pool, dir string) (*Migrator, error) {
	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(dir))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}
	return &Migrator{db: db, provider: provider}, nil
}

// Up applies every pending migration and returns how many ran
func (m *Migrator) Up(ctx context.Context) (int, error) {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}

	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration", r.Duration)
	}
	if len(results) == 0 {
		slog.Default().Info(LogMsgMigrationsUpToDate)
	}
	return len(results), nil
}

// Down rolls back the most recent migration
func (m *Migrator) Down(ctx context.Context) error {
	result, err := m.provider.Down(ctx)
	if err != nil {
		if errors.Is(err, goose.ErrNoNextVersion) {
			return nil
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToRollbackMigration, err)
	}

	slog.Default().Info(LogMsgMigrationRolledBack,
		"version", result.Source.Version,
		"path", result.Source.Path)
	return nil
}

// Status lists every migration in version order
func (m *Migrator) Status(ctx context.Context) ([]MigrationState, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadMigrationStatus, err)
	}

	out := make([]MigrationState, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationState{
			Version:   s.Source.Version,
			Path:      s.Source.Path,
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		})
	}
	return out, nil
}

// Close releases the database/sql handle. The pool stays open.
func (m *Migrator) Close() error {
	return m.db.Close()
}

// Migrate applies all pending migrations in dir
func Migrate(ctx context.Context, pool *pgxpool.Pool, dir string) error {
	m, err := NewMigrator(pool, dir)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	_, err = m.Up(ctx)
	return err
}
