package request

import (
	"newsletter-service/internal/domain/newsletter"
)

type PublishNewsletterRequest struct {
	Title          string `json:"title" binding:"required"`
	HTMLContent    string `json:"html_content" binding:"required"`
	TextContent    string `json:"text_content" binding:"required"`
	IdempotencyKey string `json:"idempotency_key" binding:"required"`
}

func (r *PublishNewsletterRequest) ToDomain() (newsletter.Content, error) {
	return newsletter.NewContent(r.Title, r.HTMLContent, r.TextContent)
}
