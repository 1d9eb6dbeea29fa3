// Package warmup precomputes sales tips for recently created contacts so the
// first rep to open a contact gets a cached answer.
package warmup

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"starzcrm_backend/internal/salestips/repository"
	"starzcrm_backend/platform/logger"
)

// Warmer computes and stores the default result for one contact.
type Warmer interface {
	Warm(ctx context.Context, contact repository.Contact) error
}

// Options bounds a warmup run.
type Options struct {
	Since       time.Time
	BatchSize   int
	Concurrency int
}

// Stats counts what a run did.
type Stats struct {
	Processed int64
	Warmed    int64
	Failed    int64
}

// Run pages through contacts created since opts.Since with a keyset cursor and
// warms each batch with bounded parallelism. A failed contact is logged and
// skipped; listing errors and cancellation stop the run.
func Run(ctx context.Context, contacts repository.ContactLister, w Warmer, opts Options, log *logger.Logger) (Stats, error) {
	if opts.BatchSize < 1 {
		opts.BatchSize = 100
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	var s Stats
	cursor := repository.Cursor{}

	for {
		batch, err := contacts.ListRecentContacts(ctx, opts.Since, cursor, opts.BatchSize)
		if err != nil {
			return s, err
		}
		if len(batch) == 0 {
			return s, nil
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(opts.Concurrency)
		for _, contact := range batch {
			g.Go(func() error {
				atomic.AddInt64(&s.Processed, 1)
				if err := w.Warm(gctx, contact); err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					atomic.AddInt64(&s.Failed, 1)
					log.Error("failed to warm sales tips", "contactId", contact.ID, "tenantId", contact.OrganizationID, "error", err)
					return nil
				}
				atomic.AddInt64(&s.Warmed, 1)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return s, err
		}

		log.Info("warmup batch done", "size", len(batch), "processed", atomic.LoadInt64(&s.Processed))
		cursor = batch[len(batch)-1].After()
		if len(batch) < opts.BatchSize {
			return s, nil
		}
	}
}
