package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/PackOpener_Go/docs"
	"github.com/osse101/PackOpener_Go/internal/catalog"
	"github.com/osse101/PackOpener_Go/internal/collection"
	"github.com/osse101/PackOpener_Go/internal/database"
	"github.com/osse101/PackOpener_Go/internal/handler"
	"github.com/osse101/PackOpener_Go/internal/logger"
	"github.com/osse101/PackOpener_Go/internal/metrics"
	"github.com/osse101/PackOpener_Go/internal/opening"
	"github.com/osse101/PackOpener_Go/internal/pack"
)

type Server struct {
	httpServer *http.Server
}

// NewServer wires the router. dbPool is nil when collections live in memory.
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, catalogs catalog.Provider, packs pack.Registry, openingService opening.Service, collectionService collection.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, dbPool, catalogs, packs, openingService, collectionService),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the full route tree
func NewRouter(apiKey string, trustedProxies []string, dbPool database.Pool, catalogs catalog.Provider, packs pack.Registry, openingService opening.Service, collectionService collection.Service) http.Handler {
	r := chi.NewRouter()

	proxies := NewTrustedProxies(trustedProxies)
	detector := NewSuspiciousActivityDetector()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(proxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	packHandler := handler.NewPackHandler(packs, catalogs, openingService)
	collectionHandler := handler.NewCollectionHandler(collectionService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/packs", func(r chi.Router) {
			r.Get("/", packHandler.HandleListPacks)
			r.Route("/{packID}", func(r chi.Router) {
				r.Get("/", packHandler.HandleGetPack)
				r.Post("/open", packHandler.HandleOpenPack)
				r.Get("/odds", packHandler.HandlePackOdds)
			})
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", handler.HandleListCards(catalogs))
			r.Get("/{cardID}", handler.HandleGetCard(catalogs))
		})

		r.Route("/collection", func(r chi.Router) {
			r.Get("/", collectionHandler.HandleGetCollection)
			r.Get("/summary", collectionHandler.HandleGetSummary)
			r.Get("/history", collectionHandler.HandleGetHistory)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(apiKey, proxies, detector))
			r.Post("/reload", handler.HandleReload(openingService))
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		// Reuse the caller's request id so traces line up across services
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler exposes the router, mostly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
