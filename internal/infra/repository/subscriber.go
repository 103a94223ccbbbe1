package repository

import (
	"context"

	"newsletter-service/internal/domain/subscriber"
	"newsletter-service/internal/infra"
	"newsletter-service/internal/infra/db"
	"newsletter-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SubscriberRepository struct{}

func NewSubscriberRepository() *SubscriberRepository {
	return &SubscriberRepository{}
}

// Upsert keeps re-subscription idempotent: an existing row keeps its status
// (a confirmed subscriber never drops back to pending) and its id, so the
// stored confirmation token stays valid.
func (r *SubscriberRepository) Upsert(ctx context.Context, tx db.DBTX, sub *subscriber.Subscriber) (uuid.UUID, error) {
	var id uuid.UUID

	err := tx.QueryRow(ctx, `
		INSERT INTO subscriptions (id, email, name, status, subscribed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name
		RETURNING id`,
		sub.ID(), sub.Email().Value(), sub.Name().Value(), string(sub.Status()), sub.SubscribedAt()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert subscriber", err)
	}

	return id, nil
}

func (r *SubscriberRepository) StoreToken(ctx context.Context, tx db.DBTX, subscriberID uuid.UUID, token string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO subscription_tokens (subscription_token, subscriber_id)
		VALUES ($1, $2)
		ON CONFLICT (subscriber_id) DO UPDATE
		SET subscription_token = EXCLUDED.subscription_token`,
		token, subscriberID)
	if err != nil {
		return infra.WrapRepoErr("failed to store subscription token", err)
	}

	return nil
}

func (r *SubscriberRepository) ConfirmByToken(ctx context.Context, tx db.DBTX, token string) (uuid.UUID, error) {
	var id uuid.UUID

	err := tx.QueryRow(ctx, `
		UPDATE subscriptions
		SET status = 'confirmed'
		WHERE id = (
			SELECT subscriber_id
			FROM subscription_tokens
			WHERE subscription_token = $1
		)
		RETURNING id`,
		token).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("subscription token not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to confirm subscriber", err)
	}

	return id, nil
}
