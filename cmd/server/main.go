package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jiyul/junior-insight/internal/api"
	"github.com/jiyul/junior-insight/internal/cache"
	"github.com/jiyul/junior-insight/internal/config"
	"github.com/jiyul/junior-insight/internal/feed"
	"github.com/jiyul/junior-insight/internal/logger"
	"github.com/jiyul/junior-insight/internal/middleware"
	"github.com/jiyul/junior-insight/internal/mission"
	"github.com/jiyul/junior-insight/internal/news"
	"github.com/jiyul/junior-insight/internal/storage"
)

func main() {
	// Load and validate configuration
	cfg := config.Load()

	// Initialize logger
	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: "stdout",
		Pretty: cfg.Env == "development",
	}); err != nil {
		panic(err)
	}

	log := logger.Get()
	log.Info().Msg("Starting application...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Initialize the cache backend. Redis is preferred; when it is not
	// reachable the in-memory store keeps a single session working.
	var store cache.Store
	redisStore, err := cache.NewRedisStore(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, falling back to in-memory cache")
		store = cache.NewMemoryStore()
	} else {
		store = redisStore
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing cache store")
		}
	}()

	if err := cache.Initialize(ctx, store, cfg.CacheVersion); err != nil {
		log.Warn().Err(err).Msg("Cache version purge failed")
	}

	// Assemble the news pipeline
	sources, err := feed.LoadSources(cfg.SourcesPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SourcesPath).Msg("Failed to load feed sources")
	}

	daily := cache.NewDaily(store, cfg.CacheVersion, cfg.CacheTTL)
	fetcher := feed.NewFetcher(cfg.FeedTimeout, cfg.PoolSize)
	prebuilt := feed.NewPrebuilt(cfg.PrebuiltFeedURL, cfg.FeedTimeout)
	newsSvc := news.NewService(daily, fetcher, prebuilt, sources, cfg.DailySize)

	// Assemble the mission engine
	missionStore, err := storage.NewStore(cfg.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SQLitePath).Msg("Failed to open mission store")
	}
	defer missionStore.Close()

	missionSvc, err := mission.NewService(ctx, missionStore, cfg.UserID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load mission history")
	}

	// Create Fiber app with custom config
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: middleware.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())

	// Serve the single-page app
	app.Static("/", cfg.StaticDir)

	// Setup API routes
	api.SetupRoutes(app, cfg, newsSvc, missionSvc)

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
