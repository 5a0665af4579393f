package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/PackOpener_Go/internal/database"
)

const migrationsDir = "../../../migrations"

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		terminate = setupDatabase(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

// setupDatabase starts a postgres container and applies migrations. On failure
// testPool stays nil and integration tests skip.
func setupDatabase(ctx context.Context) func() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return func() {}
	}

	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return terminate
	}

	pool, err := database.NewPool(ctx, connStr, database.PoolOptions{MaxConns: 10})
	if err != nil {
		fmt.Printf("WARNING: Failed to connect to test database: %v\n", err)
		return terminate
	}

	if err := database.Migrate(ctx, pool, migrationsDir); err != nil {
		fmt.Printf("WARNING: Failed to apply migrations: %v\n", err)
		pool.Close()
		return terminate
	}

	testPool = pool
	return terminate
}

// requireDB skips integration tests when no database is available
func requireDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	return testPool
}
