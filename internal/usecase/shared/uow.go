package shared

import (
	"context"
	"time"

	"newsletter-service/internal/domain/newsletter"
	"newsletter-service/internal/domain/subscriber"
	"newsletter-service/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Issues() NewsletterIssueRepository
	Deliveries() DeliveryQueueRepository
	Idempotency() IdempotencyRepository
	Subscribers() SubscriberRepository
	Users() UserRepository
	DB() db.DBTX
}

type NewsletterIssueRepository interface {
	Create(ctx context.Context, tx db.DBTX, content newsletter.Content, publishedAt time.Time) (uuid.UUID, error)
	GetContent(ctx context.Context, tx db.DBTX, issueID uuid.UUID) (*IssueContent, error)
}

type DeliveryQueueRepository interface {
	// EnqueueForIssue snapshots the confirmed subscriber set into queue
	// entries. Must run in the same transaction as issue creation.
	EnqueueForIssue(ctx context.Context, tx db.DBTX, issueID uuid.UUID, createdAt time.Time) (int64, error)
	// ClaimOne locks a single entry, skipping rows locked by other workers.
	// Returns a KindNotFound repository error when the queue is empty.
	ClaimOne(ctx context.Context, tx db.DBTX) (*DeliveryTask, error)
	Delete(ctx context.Context, tx db.DBTX, issueID uuid.UUID, subscriberEmail string) error
	IncrementRetry(ctx context.Context, tx db.DBTX, issueID uuid.UUID, subscriberEmail string) error
}

type IdempotencyRepository interface {
	// TryClaim inserts a placeholder for (userID, key), reclaiming an
	// expired one. Reports whether this caller now owns the key.
	TryClaim(ctx context.Context, tx db.DBTX, userID uuid.UUID, key newsletter.IdempotencyKey, now, expiresAt time.Time) (bool, error)
	Find(ctx context.Context, tx db.DBTX, userID uuid.UUID, key newsletter.IdempotencyKey) (*IdempotencyRecord, error)
	// SaveResponse completes the placeholder. Must run in the same
	// transaction as the side effects it certifies.
	SaveResponse(ctx context.Context, tx db.DBTX, userID uuid.UUID, key newsletter.IdempotencyKey, response SavedResponse) error
	// Release drops an owned placeholder after a failed execution so a
	// genuine retry can re-attempt without waiting for expiry.
	Release(ctx context.Context, tx db.DBTX, userID uuid.UUID, key newsletter.IdempotencyKey) error
	DeleteExpired(ctx context.Context, tx db.DBTX) (int64, error)
}

type SubscriberRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, sub *subscriber.Subscriber) (uuid.UUID, error)
	StoreToken(ctx context.Context, tx db.DBTX, subscriberID uuid.UUID, token string) error
	ConfirmByToken(ctx context.Context, tx db.DBTX, token string) (uuid.UUID, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
