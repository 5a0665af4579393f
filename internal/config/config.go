package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/PackOpener_Go/internal/database"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	APIKey      string `validate:"required"` // API key for admin routes
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	ServiceName string `validate:"required"`
	Version     string
	Environment string `validate:"required"`

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string `validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	DBMaxConns int    `validate:"min=1,max=1000"`

	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	StorageBackend  string `validate:"oneof=memory postgres"`
	CatalogPath     string `validate:"required"`
	PacksPath       string `validate:"required"`
	PacksSchemaPath string `validate:"required"`
	MigrationsDir   string

	RevealInterval time.Duration
	PoolCacheSize  int `validate:"min=1"`
	PoolCacheTTL   time.Duration

	TrustedProxies []string `validate:"dive,ip|cidr"`
}

var configValidator = validator.New()

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		ServiceName: getEnv("SERVICE_NAME", "pack-opener"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "packopener"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBMaxConns: getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),

		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		StorageBackend:  strings.ToLower(getEnv("STORAGE_BACKEND", StorageBackendMemory)),
		CatalogPath:     getEnv("CATALOG_PATH", DefaultCatalogPath),
		PacksPath:       getEnv("PACKS_PATH", DefaultPacksPath),
		PacksSchemaPath: getEnv("PACKS_SCHEMA_PATH", DefaultPacksSchemaPath),
		MigrationsDir:   getEnv("MIGRATIONS_DIR", DefaultMigrationsDir),

		RevealInterval: getEnvAsDuration("REVEAL_INTERVAL", DefaultRevealInterval),
		PoolCacheSize:  getEnvAsInt("POOL_CACHE_SIZE", DefaultPoolCacheSize),
		PoolCacheTTL:   getEnvAsDuration("POOL_CACHE_TTL", DefaultPoolCacheTTL),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	return cfg, nil
}

// Validate checks ranges and enumerations. Load only checks what it must parse.
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	if c.RevealInterval <= 0 {
		return fmt.Errorf("%s: REVEAL_INTERVAL %s", ErrMsgInvalidConfig, ErrMsgNonPositiveWindow)
	}
	if c.PoolCacheTTL <= 0 {
		return fmt.Errorf("%s: POOL_CACHE_TTL %s", ErrMsgInvalidConfig, ErrMsgNonPositiveWindow)
	}
	return nil
}

// UsesPostgres reports whether collections are stored in PostgreSQL
func (c *Config) UsesPostgres() bool {
	return c.StorageBackend == StorageBackendPostgres
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a Go duration ("600ms", "5m"), falling back to the default when unset or malformed
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
