package queries

import (
	"context"

	"github.com/google/uuid"
)

type NewsletterQueries interface {
	ListIssues(ctx context.Context, limit int) ([]*IssueView, error)
	GetIssue(ctx context.Context, issueID uuid.UUID) (*IssueView, error)
}

type NewsletterReadStore interface {
	ListIssues(ctx context.Context, limit int) ([]*IssueView, error)
	FindIssueByID(ctx context.Context, issueID uuid.UUID) (*IssueView, error)
}

type newsletterQueriesImpl struct {
	readStore NewsletterReadStore
}

func NewNewsletterQueries(readStore NewsletterReadStore) NewsletterQueries {
	return &newsletterQueriesImpl{
		readStore: readStore,
	}
}

func (q *newsletterQueriesImpl) ListIssues(ctx context.Context, limit int) ([]*IssueView, error) {
	return q.readStore.ListIssues(ctx, ValidateLimit(limit))
}

func (q *newsletterQueriesImpl) GetIssue(ctx context.Context, issueID uuid.UUID) (*IssueView, error) {
	return q.readStore.FindIssueByID(ctx, issueID)
}
