// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"ticket-scout/internal/catalog"
	"ticket-scout/internal/common/cache"
	"ticket-scout/internal/common/config"
	"ticket-scout/internal/common/logger"
	"ticket-scout/internal/common/observability"
	"ticket-scout/internal/engine"
	"ticket-scout/internal/feed"
	transport "ticket-scout/internal/transport/http"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting ticket-scout server...",
		zap.String("environment", cfg.App.Environment),
		zap.Int("port", cfg.Server.Port),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Cache backend ---
	var store cache.Store
	switch cfg.Cache.Backend {
	case "redis":
		err = retryWithBackoff(func() error {
			var err error
			store, err = cache.NewRedisStore(ctx, cfg.Cache.Redis)
			return err
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		zapLog.Info("Redis cache connected")
	default:
		store = cache.NewMemoryStore(cfg.Cache.MaxEntries, int64(cfg.Cache.MaxMemoryMB)*1024*1024)
		zapLog.Info("In-memory cache initialized",
			zap.Int("maxEntries", cfg.Cache.MaxEntries),
			zap.Int("maxMemoryMB", cfg.Cache.MaxMemoryMB),
		)
	}
	defer store.Close()

	// --- Feed client and engine ---
	feedClient := feed.NewClient(cfg.Feed, log, obs)
	cat := catalog.Default()
	eng := engine.New(cat, feedClient, store, cfg, log, obs)

	router := transport.NewRouter(eng, store, log, obs, cfg.Server.CORSOrigins)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.TimeoutMs),
		WriteTimeout: config.GetDuration(cfg.Server.TimeoutMs),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("shutdown error", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}
