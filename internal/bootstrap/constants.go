package bootstrap

import "time"

// ShutdownTimeout bounds how long in-flight requests get to finish
const ShutdownTimeout = 10 * time.Second

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingPackOpener  = "Starting PackOpener"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgStorageReady        = "Collection storage ready"
	LogMsgMigrationsApplied   = "Migrations applied"
	LogMsgContentLoaded       = "Catalog and packs loaded"
	LogMsgUnknownPackCards    = "Pack references cards missing from catalog"
)

// Error context messages for startup failures
const (
	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedMigrate         = "failed to apply migrations"
	ErrMsgFailedLoadCatalog     = "failed to load card catalog"
	ErrMsgFailedLoadPacks       = "failed to load pack definitions"
	ErrMsgUnknownBackend        = "unknown storage backend"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
