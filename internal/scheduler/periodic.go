package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"starzcrm_backend/platform/config"
	"starzcrm_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// Periodic enqueues the recent-contacts warmup on a cron schedule.
type Periodic struct {
	scheduler *asynq.Scheduler
	log       *logger.Logger
}

func NewPeriodic(cfg config.SchedulerConfig, log *logger.Logger) (*Periodic, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	cronSpec := strings.TrimSpace(cfg.GetWarmupCron())
	if cronSpec == "" {
		return nil, fmt.Errorf("warmup cron not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	s := asynq.NewScheduler(opt, &asynq.SchedulerOpts{
		Location: time.UTC,
		PostEnqueueFunc: func(info *asynq.TaskInfo, err error) {
			if err != nil {
				log.Error("failed to enqueue periodic warmup", "error", err)
				return
			}
			log.Info("periodic warmup enqueued", "taskId", info.ID, "queue", info.Queue)
		},
	})

	task, err := NewWarmRecentContactsTask(WarmRecentContactsPayload{})
	if err != nil {
		return nil, err
	}

	// A run that outlasts the timeout is cancelled before the next tick.
	if _, err := s.Register(cronSpec, task, asynq.Queue(queueName(cfg)), asynq.MaxRetry(1), asynq.Timeout(10*time.Minute)); err != nil {
		return nil, fmt.Errorf("register warmup cron %q: %w", cronSpec, err)
	}

	return &Periodic{scheduler: s, log: log}, nil
}

// Run starts the cron loop and blocks until ctx is cancelled.
func (p *Periodic) Run(ctx context.Context) {
	if p == nil || p.scheduler == nil {
		return
	}

	if err := p.scheduler.Start(); err != nil {
		p.log.Error("periodic scheduler failed to start", "error", err)
		return
	}

	<-ctx.Done()
	p.scheduler.Shutdown()
}
