package bootstrap

import (
	"log/slog"

	"github.com/osse101/PackOpener_Go/internal/config"
	"github.com/osse101/PackOpener_Go/internal/logger"
)

// SetupLogger installs the slog default from the app configuration and logs the startup banner.
// Source locations are only added in development.
func SetupLogger(cfg *config.Config) *slog.Logger {
	addSource := cfg.Environment == logger.EnvironmentDev || cfg.Environment == logger.EnvironmentDevelopment

	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingPackOpener,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage_backend", cfg.StorageBackend)
	l.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"catalog_path", cfg.CatalogPath,
		"packs_path", cfg.PacksPath,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName)

	return l
}
