package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/tuxcast/epidex/internal/config"
	"github.com/tuxcast/epidex/internal/db"
	dbFile "github.com/tuxcast/epidex/internal/db/file"
	dbRedis "github.com/tuxcast/epidex/internal/db/redis"
	logpkg "github.com/tuxcast/epidex/internal/logger"
	"github.com/tuxcast/epidex/internal/metrics"
	catalogrepo "github.com/tuxcast/epidex/internal/repository/catalog"
	chiTransport "github.com/tuxcast/epidex/internal/transport/chi"
	healthuc "github.com/tuxcast/epidex/internal/usecase/health"
	searchuc "github.com/tuxcast/epidex/internal/usecase/search"
	"github.com/tuxcast/epidex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting epidex server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_driver", cfg.Catalog.Driver),
	)

	// Create the catalog artifact store based on driver
	var store db.Store
	switch cfg.Catalog.Driver {
	case "file":
		store, err = dbFile.NewStore(cfg.Catalog.Dir)
	case "redis":
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Catalog.Addrs,
			Password: cfg.Catalog.Password,
		})
	default:
		logger.Fatal("Unknown catalog driver", zap.String("driver", cfg.Catalog.Driver))
	}
	if err != nil {
		logger.Fatal("Failed to create catalog store", zap.Error(err))
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Catalog.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Catalog store not ready", zap.Error(err))
	}

	// Load the catalog once; any failure (including an inconsistent tag
	// index) is fatal — the server never runs on a partial catalog.
	cat, err := catalogrepo.New(store).
		WithKeys(cfg.Catalog.EpisodesKey, cfg.Catalog.TagsKey).
		Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	// The artifacts are read exactly once; the catalog is immutable from
	// here on, so the store is no longer needed.
	store.Close()

	logger.Info("Catalog loaded",
		zap.Int("episodes", cat.Len()),
		zap.Int("tags", cat.TagCount()),
	)

	stoplist := loadStoplist(cfg.Search.StoplistPath, logger)
	logger.Info("Stoplist ready", zap.Int("words", len(stoplist)))

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	searchSvc := searchuc.New(cat, stoplist)
	healthSvc := healthuc.New(cat)

	server, err := chiTransport.NewServer(searchSvc, healthSvc, logger)
	if err != nil {
		logger.Fatal("Failed to create HTTP server", zap.Error(err))
	}

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// loadStoplist reads a newline-separated word list, falling back to the
// built-in list when no path is configured.
func loadStoplist(path string, logger *zap.Logger) searchuc.Stoplist {
	if path == "" {
		return searchuc.DefaultStoplist()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("Failed to read stoplist", zap.String("path", path), zap.Error(err))
	}
	return searchuc.NewStoplist(strings.Split(string(data), "\n"))
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
