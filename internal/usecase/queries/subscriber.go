package queries

import (
	"context"

	"newsletter-service/internal/domain/subscriber"
	"newsletter-service/internal/infra"
	"newsletter-service/internal/pkg/errs"
)

var ErrSubscriberNotFound = errs.New("subscriber not found")

type SubscriberQueries interface {
	GetByEmail(ctx context.Context, email string) (*SubscriberView, error)
	CountConfirmed(ctx context.Context) (int64, error)
}

type SubscriberReadStore interface {
	FindByEmail(ctx context.Context, email string) (*SubscriberView, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type subscriberQueriesImpl struct {
	readStore SubscriberReadStore
}

func NewSubscriberQueries(readStore SubscriberReadStore) SubscriberQueries {
	return &subscriberQueriesImpl{
		readStore: readStore,
	}
}

func (q *subscriberQueriesImpl) GetByEmail(ctx context.Context, email string) (*SubscriberView, error) {
	view, err := q.readStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSubscriberNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *subscriberQueriesImpl) CountConfirmed(ctx context.Context) (int64, error) {
	return q.readStore.CountByStatus(ctx, string(subscriber.StatusConfirmed))
}
