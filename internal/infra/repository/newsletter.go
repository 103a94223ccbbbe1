package repository

import (
	"context"
	"time"

	"newsletter-service/internal/domain/newsletter"
	"newsletter-service/internal/infra"
	"newsletter-service/internal/infra/db"
	"newsletter-service/internal/pkg/pgconv"
	"newsletter-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type NewsletterIssueRepository struct{}

func NewNewsletterIssueRepository() *NewsletterIssueRepository {
	return &NewsletterIssueRepository{}
}

func (r *NewsletterIssueRepository) Create(ctx context.Context, tx db.DBTX, content newsletter.Content, publishedAt time.Time) (uuid.UUID, error) {
	issueID := uuid.New()

	_, err := tx.Exec(ctx, `
		INSERT INTO newsletter_issues (id, title, text_content, html_content, published_at)
		VALUES ($1, $2, $3, $4, $5)`,
		issueID, content.Title, content.Text, content.HTML, publishedAt)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create newsletter issue", err)
	}

	return issueID, nil
}

func (r *NewsletterIssueRepository) GetContent(ctx context.Context, tx db.DBTX, issueID uuid.UUID) (*shared.IssueContent, error) {
	content := &shared.IssueContent{ID: issueID}

	err := tx.QueryRow(ctx, `
		SELECT title, html_content, text_content
		FROM newsletter_issues
		WHERE id = $1`,
		issueID).Scan(&content.Title, &content.HTML, &content.Text)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("newsletter issue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get newsletter issue", err)
	}

	return content, nil
}
