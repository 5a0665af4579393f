package config

import "time"

// Default data locations, relative to the repository root
const (
	DefaultCatalogPath     = "configs/catalog"
	DefaultPacksPath       = "configs/packs"
	DefaultPacksSchemaPath = "configs/schemas/packs.schema.json"
	DefaultMigrationsDir   = "migrations"
)

// Storage backends
const (
	StorageBackendMemory   = "memory"
	StorageBackendPostgres = "postgres"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultRevealInterval    = 600 * time.Millisecond
	DefaultPoolCacheSize     = 256
	DefaultPoolCacheTTL      = 10 * time.Minute
)

// Error messages
const (
	ErrMsgInvalidPort       = "invalid PORT value"
	ErrMsgAPIKeyRequired    = "API_KEY environment variable must be set for security"
	ErrMsgInvalidConfig     = "invalid configuration"
	ErrMsgNonPositiveWindow = "must be a positive duration"
)
