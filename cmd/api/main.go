package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apphttp "starzcrm_backend/internal/http"
	"starzcrm_backend/internal/http/router"
	"starzcrm_backend/internal/salestips"
	"starzcrm_backend/internal/salestips/cache"
	"starzcrm_backend/internal/salestips/engine"
	"starzcrm_backend/internal/scheduler"
	"starzcrm_backend/migrations"
	"starzcrm_backend/platform/config"
	"starzcrm_backend/platform/db"
	"starzcrm_backend/platform/logger"
	"starzcrm_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	if cfg.ShouldRunMigrations() {
		if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
			applied, err := db.RunMigrations(ctx, pool, migrations.FS)
			if applied > 0 {
				log.Info("database migrations applied", "count", applied)
			}
			return err
		}); err != nil {
			log.Error("failed to run database migrations", "error", err)
			panic("failed to run database migrations: " + err.Error())
		}
		log.Info("database migrations complete")
	}

	tipCache, closeCache := initCache(ctx, cfg, log)
	if closeCache != nil {
		defer closeCache()
	}

	eng := engine.Default()
	if err := eng.Catalog().Validate(); err != nil {
		log.Error("invalid sales tip catalog", "error", err)
		panic("invalid sales tip catalog: " + err.Error())
	}
	log.Info("sales tip catalog loaded", "tips", eng.Catalog().Len())

	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	salesTipsModule := salestips.NewModule(pool, eng, tipCache, val, cfg, log)

	if cfg.IsCacheEnabled() {
		warmClient, err := scheduler.NewClient(cfg)
		if err != nil {
			log.Warn("warmup queue unavailable; warm requests run inline", "error", err)
		} else {
			defer func() { _ = warmClient.Close() }()
			salesTipsModule.Service().SetWarmQueue(warmClient)
		}
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: db.NewPoolAdapter(pool),
		Modules: []apphttp.Module{
			salesTipsModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initCache connects to Redis when configured. Without Redis every lookup runs the engine.
func initCache(ctx context.Context, cfg config.CacheConfig, log *logger.Logger) (cache.Cache, func()) {
	if !cfg.IsCacheEnabled() {
		log.Warn("REDIS_URL not configured; sales tip caching disabled")
		return cache.Nop{}, nil
	}

	redisCache, err := cache.NewRedis(cfg)
	if err != nil {
		log.Error("failed to initialize sales tip cache", "error", err)
		return cache.Nop{}, nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		log.Warn("redis unreachable at startup; cache errors will be logged per request", "error", err)
	}

	log.Info("sales tip cache enabled", "ttl", cfg.GetSalesTipsCacheTTL().String())
	return redisCache, func() {
		_ = redisCache.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
