package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PackOpener_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Store  *CollectionStore
}

// GracefulShutdown stops the HTTP server first so no new openings start,
// then closes the database pool. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil && components.Store.Pool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
