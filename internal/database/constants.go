package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
	DefaultMaxConnections = 10
	DefaultMaxConnIdle    = 5 * time.Minute
	DefaultMaxConnLife    = 30 * time.Minute

	// DefaultMigrationsDir is relative to the repository root
	DefaultMigrationsDir = "migrations"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString     = "failed to parse connection string"
	ErrMsgFailedToCreatePool          = "failed to create connection pool"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
	ErrMsgFailedToCreateMigrator      = "failed to create migration provider"
	ErrMsgFailedToApplyMigrations     = "failed to apply migrations"
	ErrMsgFailedToRollbackMigration   = "failed to roll back migration"
	ErrMsgFailedToReadMigrationStatus = "failed to read migration status"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Migration applied"
	LogMsgMigrationRolledBack             = "Migration rolled back"
	LogMsgMigrationsUpToDate              = "Database schema is up to date"
)
