package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"starzcrm_backend/internal/salestips/cache"
	"starzcrm_backend/internal/salestips/engine"
	"starzcrm_backend/internal/salestips/repository"
	"starzcrm_backend/internal/salestips/service"
	"starzcrm_backend/internal/salestips/warmup"
	"starzcrm_backend/platform/config"
	"starzcrm_backend/platform/db"
	"starzcrm_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting sales tips cache warmup", "lookback", cfg.GetWarmupLookback().String())

	if !cfg.IsCacheEnabled() {
		log.Warn("REDIS_URL not configured; nothing to warm")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
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

	stats, err := warmup.Run(ctx, repo, svc, warmup.Options{
		Since:       time.Now().Add(-cfg.GetWarmupLookback()),
		BatchSize:   cfg.GetWarmupBatchSize(),
		Concurrency: cfg.GetWarmupConcurrency(),
	}, log)
	if err != nil {
		log.Error("sales tips warmup aborted", "error", err, "processed", stats.Processed, "warmed", stats.Warmed, "failed", stats.Failed)
		panic("sales tips warmup aborted: " + err.Error())
	}

	log.Info("sales tips warmup completed", "processed", stats.Processed, "warmed", stats.Warmed, "failed", stats.Failed)
}
