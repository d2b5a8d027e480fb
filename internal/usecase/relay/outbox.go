package relay

import (
	"context"
	"log/slog"
	"time"

	"guri24/internal/pkg/clock"
	"guri24/internal/pkg/config"
	"guri24/internal/pkg/errs"
	"guri24/internal/usecase/shared"
)

var ErrClaimFailed = errs.New("failed to claim outbox batch")

type Publisher interface {
	Publish(ctx context.Context, job shared.NotificationJob) error
}

// BatchResult counts what happened to the jobs of one claimed batch.
type BatchResult struct {
	Sent        int
	Rescheduled int
	Failed      int
}

func (r BatchResult) Total() int { return r.Sent + r.Rescheduled + r.Failed }

// OutboxRelay moves queued notification jobs to the broker. Jobs are claimed
// with SKIP LOCKED, so several relays can share one table.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.OutboxConfig) *OutboxRelay {
	return &OutboxRelay{uow: uow, publisher: publisher, clock: clk, cfg: cfg}
}

// Run polls until ctx is cancelled. A full batch is followed immediately by
// the next one.
func (r *OutboxRelay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		res, err := r.RunOnce(ctx)
		if err != nil {
			slog.Error("outbox relay batch failed", "error", err.Error())
		} else if res.Total() > 0 {
			slog.Info("outbox relay batch",
				"sent", res.Sent,
				"rescheduled", res.Rescheduled,
				"failed", res.Failed,
			)
		}

		if err == nil && res.Total() >= r.cfg.BatchSize {
			if ctx.Err() != nil {
				return nil
			}
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce claims one batch and settles every job in it within the same
// transaction.
func (r *OutboxRelay) RunOnce(ctx context.Context) (BatchResult, error) {
	var res BatchResult

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res = BatchResult{}
		now := r.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.cfg.BatchSize)
		if err != nil {
			return errs.Mark(err, ErrClaimFailed)
		}

		for _, job := range jobs {
			if err := r.settle(ctx, tx, job, now, &res); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return BatchResult{}, err
	}
	return res, nil
}

func (r *OutboxRelay) settle(ctx context.Context, tx shared.Tx, job shared.NotificationJob, now time.Time, res *BatchResult) error {
	repo := tx.Notifications()

	pubErr := r.publisher.Publish(ctx, job)
	if pubErr == nil {
		res.Sent++
		return repo.MarkSent(ctx, tx.DB(), job.ID, now)
	}

	attempts := job.Attempts + 1
	if attempts >= r.cfg.MaxAttempts {
		slog.Error("notification job gave up",
			"job_id", job.ID.String(),
			"topic", job.Topic,
			"attempts", attempts,
			"error", pubErr.Error(),
		)
		res.Failed++
		return repo.MarkFailed(ctx, tx.DB(), job.ID, pubErr.Error(), now)
	}

	res.Rescheduled++
	return repo.Reschedule(ctx, tx.DB(), job.ID, pubErr.Error(), now.Add(Backoff(r.cfg.BaseBackoff, attempts)), now)
}

// Backoff doubles base for every attempt already made, capped at one hour.
func Backoff(base time.Duration, attempts int) time.Duration {
	const ceiling = time.Hour
	if attempts < 1 {
		attempts = 1
	}
	d := base
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= ceiling {
			return ceiling
		}
	}
	return d
}
