package scheduler

import (
	"context"
	"fmt"
	"time"

	"starzcrm_backend/internal/salestips/repository"
	"starzcrm_backend/internal/salestips/warmup"
	"starzcrm_backend/platform/apperr"
	"starzcrm_backend/platform/config"
	"starzcrm_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// WarmupSettings bounds the periodic warmup task.
type WarmupSettings struct {
	Lookback    time.Duration
	BatchSize   int
	Concurrency int
}

type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	contacts repository.Repository
	warmer   warmup.Warmer
	settings WarmupSettings
	now      func() time.Time
	log      *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, contacts repository.Repository, warmer warmup.Warmer, settings WarmupSettings, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 2
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queueName(cfg): 1,
		},
	})

	w := newWorker(contacts, warmer, settings, log)
	w.server = server
	return w, nil
}

func newWorker(contacts repository.Repository, warmer warmup.Warmer, settings WarmupSettings, log *logger.Logger) *Worker {
	if settings.Lookback <= 0 {
		settings.Lookback = 72 * time.Hour
	}

	mux := asynq.NewServeMux()
	w := &Worker{
		mux:      mux,
		contacts: contacts,
		warmer:   warmer,
		settings: settings,
		now:      time.Now,
		log:      log,
	}

	mux.HandleFunc(TaskWarmRecentContacts, w.handleWarmRecentContacts)
	mux.HandleFunc(TaskWarmContact, w.handleWarmContact)

	return w
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleWarmRecentContacts(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseWarmRecentContactsPayload(task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	lookback := w.settings.Lookback
	if payload.LookbackSeconds > 0 {
		lookback = time.Duration(payload.LookbackSeconds) * time.Second
	}

	stats, err := warmup.Run(ctx, w.contacts, w.warmer, warmup.Options{
		Since:       w.now().Add(-lookback),
		BatchSize:   w.settings.BatchSize,
		Concurrency: w.settings.Concurrency,
	}, w.log)
	if err != nil {
		return err
	}

	w.log.Info("scheduled sales tips warmup completed", "processed", stats.Processed, "warmed", stats.Warmed, "failed", stats.Failed)
	return nil
}

func (w *Worker) handleWarmContact(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseWarmContactPayload(task)
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	contactID, orgID, err := payload.ids()
	if err != nil {
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	contact, err := w.contacts.GetContact(ctx, orgID, contactID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			w.log.Warn("skipping warmup for missing contact", "contactId", contactID, "tenantId", orgID)
			return nil
		}
		return err
	}

	if err := w.warmer.Warm(ctx, contact); err != nil {
		w.log.Error("failed to warm sales tips", "contactId", contactID, "tenantId", orgID, "error", err)
		return err
	}
	return nil
}
