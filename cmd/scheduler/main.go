package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"starzcrm_backend/internal/salestips/cache"
	"starzcrm_backend/internal/salestips/engine"
	"starzcrm_backend/internal/salestips/repository"
	"starzcrm_backend/internal/salestips/service"
	"starzcrm_backend/internal/scheduler"
	"starzcrm_backend/platform/config"
	"starzcrm_backend/platform/db"
	"starzcrm_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting scheduler", "env", cfg.Env, "warmupCron", cfg.GetWarmupCron())

	if !cfg.IsCacheEnabled() {
		log.Warn("REDIS_URL not configured; scheduler has nothing to do")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	redisCache, err := cache.NewRedis(cfg)
	if err != nil {
		log.Error("failed to initialize sales tip cache", "error", err)
		panic("failed to initialize sales tip cache: " + err.Error())
	}
	defer func() { _ = redisCache.Close() }()

	eng := engine.Default()
	if err := eng.Catalog().Validate(); err != nil {
		panic("invalid sales tip catalog: " + err.Error())
	}

	repo := repository.New(pool)
	svc := service.New(eng, repo, redisCache, cfg, log)

	periodic, err := scheduler.NewPeriodic(cfg, log)
	if err != nil {
		log.Error("failed to initialize periodic scheduler", "error", err)
		panic("failed to initialize periodic scheduler: " + err.Error())
	}
	go periodic.Run(ctx)

	worker, err := scheduler.NewWorker(cfg, repo, svc, scheduler.WarmupSettings{
		Lookback:    cfg.GetWarmupLookback(),
		BatchSize:   cfg.GetWarmupBatchSize(),
		Concurrency: cfg.GetWarmupConcurrency(),
	}, log)
	if err != nil {
		log.Error("failed to initialize scheduler worker", "error", err)
		panic("failed to initialize scheduler worker: " + err.Error())
	}

	worker.Run(ctx)
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return errors.New(name + ": invalid retry attempts")
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
