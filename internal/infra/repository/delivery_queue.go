package repository

import (
	"context"
	"time"

	"newsletter-service/internal/infra"
	"newsletter-service/internal/infra/db"
	"newsletter-service/internal/pkg/pgconv"
	"newsletter-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type DeliveryQueueRepository struct{}

func NewDeliveryQueueRepository() *DeliveryQueueRepository {
	return &DeliveryQueueRepository{}
}

// EnqueueForIssue snapshots the confirmed subscriber set into queue entries.
// The snapshot keeps the fan-out list stable even if subscribers confirm or
// leave while delivery is in progress.
func (r *DeliveryQueueRepository) EnqueueForIssue(ctx context.Context, tx db.DBTX, issueID uuid.UUID, createdAt time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, `
		INSERT INTO issue_delivery_queue (newsletter_issue_id, subscriber_email, created_at)
		SELECT $1, email, $2
		FROM subscriptions
		WHERE status = 'confirmed'`,
		issueID, createdAt)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to enqueue issue deliveries", err)
	}

	return tag.RowsAffected(), nil
}

// ClaimOne locks a single entry for the calling transaction. SKIP LOCKED
// lets concurrent workers compete for work without blocking on each other
// or processing the same row twice.
func (r *DeliveryQueueRepository) ClaimOne(ctx context.Context, tx db.DBTX) (*shared.DeliveryTask, error) {
	task := &shared.DeliveryTask{}

	err := tx.QueryRow(ctx, `
		SELECT newsletter_issue_id, subscriber_email, n_retries
		FROM issue_delivery_queue
		LIMIT 1
		FOR UPDATE SKIP LOCKED`).Scan(&task.IssueID, &task.SubscriberEmail, &task.NRetries)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("delivery queue is empty", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to claim delivery queue entry", err)
	}

	return task, nil
}

func (r *DeliveryQueueRepository) Delete(ctx context.Context, tx db.DBTX, issueID uuid.UUID, subscriberEmail string) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM issue_delivery_queue
		WHERE newsletter_issue_id = $1 AND subscriber_email = $2`,
		issueID, subscriberEmail)
	if err != nil {
		return infra.WrapRepoErr("failed to delete delivery queue entry", err)
	}

	return nil
}

func (r *DeliveryQueueRepository) IncrementRetry(ctx context.Context, tx db.DBTX, issueID uuid.UUID, subscriberEmail string) error {
	_, err := tx.Exec(ctx, `
		UPDATE issue_delivery_queue
		SET n_retries = n_retries + 1
		WHERE newsletter_issue_id = $1 AND subscriber_email = $2`,
		issueID, subscriberEmail)
	if err != nil {
		return infra.WrapRepoErr("failed to increment delivery retry count", err)
	}

	return nil
}
