package response

import (
	"time"

	"newsletter-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type IssueResponse struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	PublishedAt       time.Time `json:"published_at"`
	PendingDeliveries int64     `json:"pending_deliveries"`
}

func FromIssueView(view *queries.IssueView) *IssueResponse {
	return &IssueResponse{
		ID:                view.ID,
		Title:             view.Title,
		PublishedAt:       view.PublishedAt,
		PendingDeliveries: view.PendingDeliveries,
	}
}
