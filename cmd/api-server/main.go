package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"locallibrary/database"
	"locallibrary/internal/config"
	"locallibrary/internal/http-api/repository"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)

	db, err := database.OpenGorm(cfg, logger)
	if err != nil {
		logger.Error("database_connect_failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db, logger); err != nil {
		logger.Error("database_migrate_failed", "error", err)
		os.Exit(1)
	}

	// the summary cache is optional; a nil cache always misses
	cache, err := repository.NewSummaryCache(cfg.RedisURL, cfg.RedisPassword, cfg.CacheDuration())
	if err != nil {
		logger.Warn("summary_cache_disabled", "redis_url", cfg.RedisURL, "error", err)
		cache = nil
	}
	defer cache.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	stop := make(chan struct{})
	router := newRouter(cfg, db, cache, logger, stop)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: cfg.RequestTimeout,
		WriteTimeout:      2 * cfg.RequestTimeout,
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting_http_server", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-sigChan:
		logger.Info("received_shutdown_signal")
	case err := <-errChan:
		logger.Error("server_error", "error", err.Error())
		close(stop)
		os.Exit(1)
	}

	close(stop)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server_shutdown_failed", "error", err)
		return
	}
	logger.Info("server_stopped_gracefully")
}
