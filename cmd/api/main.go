// Command api is the Baseball Data Lab API server.
//
// Usage:
//
//	bdl-api
//	API_PORT=8080 bdl-api

// @title Baseball Data Lab API
// @version 1.0.0
// @description Baseball statistics API serving player and team profiles, schedules, standings, leaderboards, Statcast data, and hall of fame records aggregated from public upstream sources.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/timothyf/baseball-data-lab-web/internal/api"
	"github.com/timothyf/baseball-data-lab-web/internal/cache"
	"github.com/timothyf/baseball-data-lab-web/internal/config"
	"github.com/timothyf/baseball-data-lab-web/internal/db"
	"github.com/timothyf/baseball-data-lab-web/internal/store"
	"github.com/timothyf/baseball-data-lab-web/internal/upstream"

	_ "github.com/timothyf/baseball-data-lab-web/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Connect to database
	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	// Initialize cache: Redis when configured, in-process memory otherwise.
	var appCache cache.Cache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.RedisURL, logger)
		if err != nil {
			logger.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer redisCache.Close()
		appCache = redisCache
		logger.Info("Cache initialized", "backend", "redis")
	} else {
		appCache = cache.NewMemory(cfg.CacheEnabled)
		logger.Info("Cache initialized", "backend", "memory", "enabled", cfg.CacheEnabled)
	}

	// One upstream client for the life of the process; its rate limiter
	// and connection pool are shared across all requests.
	client := upstream.NewHTTPClient(cfg, logger)

	router := api.NewRouter(store.NewPGX(pool.Pool), client, appCache, pool, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting Baseball Data Lab API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
