package readstore

import (
	"context"

	"newsletter-service/internal/infra"
	"newsletter-service/internal/infra/db"
	"newsletter-service/internal/pkg/pgconv"
	"newsletter-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NewsletterReadStore struct {
	db db.DBTX
}

func NewNewsletterReadStore(pool *pgxpool.Pool) *NewsletterReadStore {
	return &NewsletterReadStore{db: pool}
}

func (s *NewsletterReadStore) ListIssues(ctx context.Context, limit int) ([]*queries.IssueView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT i.id, i.title, i.published_at, count(q.subscriber_email) AS pending
		FROM newsletter_issues i
		LEFT JOIN issue_delivery_queue q ON q.newsletter_issue_id = i.id
		GROUP BY i.id, i.title, i.published_at
		ORDER BY i.published_at DESC
		LIMIT $1`,
		limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list newsletter issues", err)
	}
	defer rows.Close()

	var views []*queries.IssueView
	for rows.Next() {
		view := &queries.IssueView{}
		if err := rows.Scan(&view.ID, &view.Title, &view.PublishedAt, &view.PendingDeliveries); err != nil {
			return nil, infra.WrapRepoErr("failed to scan newsletter issue", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read newsletter issues", err)
	}

	return views, nil
}

func (s *NewsletterReadStore) FindIssueByID(ctx context.Context, issueID uuid.UUID) (*queries.IssueView, error) {
	view := &queries.IssueView{}

	err := s.db.QueryRow(ctx, `
		SELECT i.id, i.title, i.published_at, count(q.subscriber_email) AS pending
		FROM newsletter_issues i
		LEFT JOIN issue_delivery_queue q ON q.newsletter_issue_id = i.id
		WHERE i.id = $1
		GROUP BY i.id, i.title, i.published_at`,
		issueID).Scan(&view.ID, &view.Title, &view.PublishedAt, &view.PendingDeliveries)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("newsletter issue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find newsletter issue", err)
	}

	return view, nil
}
