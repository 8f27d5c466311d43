package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planets-explorer/internal/auth"
	"planets-explorer/internal/auth/providers"
	"planets-explorer/internal/discovery"
	"planets-explorer/internal/galaxy"
	"planets-explorer/internal/middleware"
	"planets-explorer/internal/planet"
	"planets-explorer/internal/server"
	"planets-explorer/internal/shared/config"
	"planets-explorer/internal/shared/database"
	"planets-explorer/internal/shared/logger"
	"planets-explorer/internal/shared/redis"
	"planets-explorer/internal/system"
	"planets-explorer/migrations"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger.Init()

	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.GlobalConfig
	log := slog.With("component", "main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var migrationFS fs.FS = migrations.FS
	if cfg.Database.MigrationsPath != "" {
		migrationFS = os.DirFS(cfg.Database.MigrationsPath)
	}
	if err := db.RunMigrations(migrationFS); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	tuning := system.DefaultTuning()
	if cfg.Generation.TuningPath != "" {
		tuning, err = system.LoadTuning(cfg.Generation.TuningPath)
		if err != nil {
			return fmt.Errorf("failed to load generation tuning: %w", err)
		}
		log.Info("Generation tuning loaded", "path", cfg.Generation.TuningPath)
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory galaxy cache", "error", err)
		redisClient = nil
	}
	defer redisClient.Close()

	var cache galaxy.Cache
	deps := server.Dependencies{Config: cfg, DB: db}
	if redisClient != nil {
		cache = galaxy.NewRedisCache(redisClient.Client, cfg.Generation.CacheTTL)
		deps.Cache = redisClient
	} else {
		cache = galaxy.NewMemoryCache(cfg.Generation.CacheTTL, cfg.Generation.CacheMaxEntries)
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiration)
	if err != nil {
		return err
	}
	states := auth.NewStateManager()
	go states.Run(ctx)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	go rateLimiter.Run(ctx)

	deps.PlanetService = planet.NewService(slog.Default())
	deps.GalaxyService = galaxy.NewService(cache, tuning, cfg.Generation.Workers, slog.Default())
	deps.DiscoveryService = discovery.NewService(discovery.NewSQLRepository(db, slog.Default()), tuning, slog.Default())
	deps.Tokens = tokens
	deps.States = states
	deps.RateLimiter = rateLimiter
	deps.OAuthProvider = providers.NewGitHubProvider(cfg.OAuth.GitHub)

	routes := server.NewRoutes(deps, slog.Default())

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      routes.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Planets explorer server starting",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"database_driver", cfg.Database.Driver,
			"redis_cache", redisClient != nil,
		)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
