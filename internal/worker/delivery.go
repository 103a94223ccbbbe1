package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"newsletter-service/internal/domain/subscriber"
	"newsletter-service/internal/infra"
	"newsletter-service/internal/pkg/config"
	"newsletter-service/internal/pkg/errs"
	"newsletter-service/internal/pkg/mailer"
	"newsletter-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExecutionOutcome int

const (
	// OutcomeDelivered means one queue entry was consumed, by delivery or
	// by discarding an entry that can never succeed.
	OutcomeDelivered ExecutionOutcome = iota
	OutcomeEmptyQueue
	OutcomeTransientFailure
)

// DeliveryWorker drains the issue delivery queue. Each attempt runs in its
// own single-shot transaction: a retrying transaction runner would repeat
// the mail send on conflict, and sends cannot be rolled back.
type DeliveryWorker struct {
	pool        *pgxpool.Pool
	deliveries  shared.DeliveryQueueRepository
	issues      shared.NewsletterIssueRepository
	idempotency shared.IdempotencyRepository
	mailer      mailer.Mailer
	cfg         config.WorkerConfig
}

func NewDeliveryWorker(
	pool *pgxpool.Pool,
	deliveries shared.DeliveryQueueRepository,
	issues shared.NewsletterIssueRepository,
	idempotency shared.IdempotencyRepository,
	m mailer.Mailer,
	cfg config.WorkerConfig,
) *DeliveryWorker {
	return &DeliveryWorker{
		pool:        pool,
		deliveries:  deliveries,
		issues:      issues,
		idempotency: idempotency,
		mailer:      m,
		cfg:         cfg,
	}
}

// Run polls the queue until ctx is cancelled.
func (w *DeliveryWorker) Run(ctx context.Context) {
	slog.Info("delivery worker started",
		"poll_interval", w.cfg.PollInterval.String(),
		"max_retries", w.cfg.MaxRetries)

	for {
		outcome, err := w.TryExecuteOne(ctx)

		var wait time.Duration
		switch {
		case err != nil || outcome == OutcomeTransientFailure:
			if err != nil {
				slog.Error("delivery attempt failed", "error", err.Error())
			}
			wait = w.cfg.ErrorBackoff
		case outcome == OutcomeEmptyQueue:
			wait = w.cfg.PollInterval
		default:
			continue
		}

		select {
		case <-ctx.Done():
			slog.Info("delivery worker stopped")
			return
		case <-time.After(wait):
		}
	}
}

// TryExecuteOne claims at most one queue entry and attempts delivery.
// The row stays locked for the whole attempt; a crash before commit
// returns it to the queue.
func (w *DeliveryWorker) TryExecuteOne(ctx context.Context) (ExecutionOutcome, error) {
	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return OutcomeTransientFailure, errs.Wrap(err, "failed to begin delivery transaction")
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback delivery transaction", "error", rollbackErr.Error())
		}
	}()

	task, err := w.deliveries.ClaimOne(ctx, tx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return OutcomeEmptyQueue, nil
		}
		return OutcomeTransientFailure, errs.Wrap(err, "failed to claim delivery task")
	}

	content, err := w.issues.GetContent(ctx, tx, task.IssueID)
	if err != nil {
		return OutcomeTransientFailure, errs.Wrap(err, "failed to load issue content")
	}

	email, err := subscriber.NewEmail(task.SubscriberEmail)
	if err != nil {
		// A stored email that fails validation will never send. Drop the
		// entry instead of retrying forever.
		slog.Warn("skipping delivery to invalid stored email",
			"issue_id", task.IssueID,
			"email", task.SubscriberEmail,
			"error", err.Error())
		return w.completeTask(ctx, tx, task)
	}

	if sendErr := w.mailer.Send(email.Value(), content.Title, content.HTML, content.Text); sendErr != nil {
		return w.handleSendFailure(ctx, tx, task, sendErr)
	}

	return w.completeTask(ctx, tx, task)
}

func (w *DeliveryWorker) completeTask(ctx context.Context, tx pgx.Tx, task *shared.DeliveryTask) (ExecutionOutcome, error) {
	if err := w.deliveries.Delete(ctx, tx, task.IssueID, task.SubscriberEmail); err != nil {
		return OutcomeTransientFailure, errs.Wrap(err, "failed to dequeue delivery task")
	}
	if err := tx.Commit(ctx); err != nil {
		return OutcomeTransientFailure, errs.Wrap(err, "failed to commit delivery transaction")
	}
	return OutcomeDelivered, nil
}

func (w *DeliveryWorker) handleSendFailure(ctx context.Context, tx pgx.Tx, task *shared.DeliveryTask, sendErr error) (ExecutionOutcome, error) {
	if int(task.NRetries)+1 >= w.cfg.MaxRetries {
		slog.Error("delivery retries exhausted, dropping task",
			"issue_id", task.IssueID,
			"email", task.SubscriberEmail,
			"attempts", task.NRetries+1,
			"error", sendErr.Error())
		return w.completeTask(ctx, tx, task)
	}

	slog.Warn("delivery failed, will retry",
		"issue_id", task.IssueID,
		"email", task.SubscriberEmail,
		"attempt", task.NRetries+1,
		"error", sendErr.Error())

	if err := w.deliveries.IncrementRetry(ctx, tx, task.IssueID, task.SubscriberEmail); err != nil {
		return OutcomeTransientFailure, errs.Wrap(err, "failed to record delivery retry")
	}
	if err := tx.Commit(ctx); err != nil {
		return OutcomeTransientFailure, errs.Wrap(err, "failed to commit delivery retry")
	}

	return OutcomeTransientFailure, nil
}

// RunCleanup periodically removes expired idempotency records so abandoned
// placeholders do not block their keys forever.
func (w *DeliveryWorker) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := w.idempotency.DeleteExpired(ctx, w.pool)
			if err != nil {
				slog.Warn("failed to delete expired idempotency records", "error", err.Error())
				continue
			}
			if deleted > 0 {
				slog.Info("deleted expired idempotency records", "count", deleted)
			}
		}
	}
}
