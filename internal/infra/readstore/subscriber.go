package readstore

import (
	"context"

	"newsletter-service/internal/infra"
	"newsletter-service/internal/infra/db"
	"newsletter-service/internal/pkg/pgconv"
	"newsletter-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriberReadStore struct {
	db db.DBTX
}

func NewSubscriberReadStore(pool *pgxpool.Pool) *SubscriberReadStore {
	return &SubscriberReadStore{db: pool}
}

func (s *SubscriberReadStore) FindByEmail(ctx context.Context, email string) (*queries.SubscriberView, error) {
	view := &queries.SubscriberView{}

	err := s.db.QueryRow(ctx, `
		SELECT id, email, name, status, subscribed_at
		FROM subscriptions
		WHERE email = $1`,
		email).Scan(&view.ID, &view.Email, &view.Name, &view.Status, &view.SubscribedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("subscriber not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subscriber", err)
	}

	return view, nil
}

func (s *SubscriberReadStore) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64

	err := s.db.QueryRow(ctx, `
		SELECT count(*)
		FROM subscriptions
		WHERE status = $1`,
		status).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count subscribers", err)
	}

	return count, nil
}
