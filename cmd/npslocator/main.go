package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/proverbs-one/npslocator/internal/config"
	"github.com/proverbs-one/npslocator/internal/domain"
	logpkg "github.com/proverbs-one/npslocator/internal/logger"
	"github.com/proverbs-one/npslocator/internal/metrics"
	"github.com/proverbs-one/npslocator/internal/repository/agentsource"
	chiTransport "github.com/proverbs-one/npslocator/internal/transport/chi"
	healthuc "github.com/proverbs-one/npslocator/internal/usecase/health"
	locatoruc "github.com/proverbs-one/npslocator/internal/usecase/locator"
	"github.com/proverbs-one/npslocator/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting npslocator API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("registry", cfg.Registry.Path),
		zap.String("unit", cfg.Search.Unit),
	)

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterLocatorMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Composition root: registry source and locator
	source := agentsource.New(cfg.Registry.Path)
	locatorSvc := locatoruc.New(source, cfg.Search.DistanceUnit(), logger).
		WithRecorder(metrics.LocatorRecorder{
			IsInvalid: func(err error) bool { return errors.Is(err, domain.ErrInvalidQuery) },
		})

	// A registry that fails validation at startup is fatal: serving an empty one hides the problem.
	n, err := locatorSvc.Reload(ctx)
	if err != nil {
		logger.Fatal("Failed to load agent registry", zap.Error(err))
	}
	logger.Info("Agent registry ready", zap.Int("agents", n))

	if cfg.Registry.Watch {
		go watchRegistry(ctx, source, locatorSvc, time.Duration(cfg.Registry.DebounceMS)*time.Millisecond, logger)
	}

	healthSvc := healthuc.New(locatorSvc, source)

	server := chiTransport.NewServer(locatorSvc, healthSvc, chiTransport.SearchDefaults{
		Radius:   cfg.Search.DefaultRadius,
		Limit:    cfg.Search.DefaultLimit,
		MaxLimit: cfg.Search.MaxLimit,
	}, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// watchRegistry reloads the locator whenever the registry file changes.
// A bad edit is logged and the previous snapshot keeps serving.
func watchRegistry(
	ctx context.Context,
	source *agentsource.File,
	svc *locatoruc.Service,
	debounce time.Duration,
	logger *zap.Logger,
) {
	err := source.Watch(ctx, debounce, func() {
		if _, err := svc.Reload(ctx); err != nil {
			logger.Warn("Registry change rejected", zap.Error(err))
		}
	}, logger)
	if err != nil {
		logger.Error("Registry watcher stopped", zap.Error(err))
	}
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
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.ErrorCodeInternalError,
						Message: "internal error",
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

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
