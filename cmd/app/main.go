package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/PackOpener_Go/internal/bootstrap"
	"github.com/osse101/PackOpener_Go/internal/config"
	"github.com/osse101/PackOpener_Go/internal/opening"
	"github.com/osse101/PackOpener_Go/internal/server"
)

// @title PackOpener API
// @version 1.0
// @description Booster pack opening, card collections and simulated pack odds.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	bootstrap.SetupLogger(cfg)

	ctx := context.Background()
	store, err := bootstrap.InitializeCollectionStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize collection storage", "error", err)
		os.Exit(1)
	}

	svcs, err := bootstrap.InitializeServices(ctx, cfg, store)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		store.Close()
		os.Exit(1)
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, store.HealthPool(),
		svcs.Catalogs, svcs.Packs, svcs.Openings, svcs.Collections)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-reload:
			reloadContent(svcs.Openings)
		case <-stop:
			shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
			bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv, Store: store})
			cancel()
			return
		}
	}
}

// reloadContent re-reads the catalog and packs on SIGHUP; a bad file keeps the old content
func reloadContent(openings opening.Service) {
	report, err := openings.Reload(context.Background())
	if err != nil {
		slog.Error("Reload on SIGHUP failed, keeping current content", "error", err)
		return
	}
	slog.Info("Reloaded on SIGHUP",
		"catalog_version", report.CatalogVersion,
		"cards", report.Cards,
		"packs", report.Packs)
}
