package shared

import (
	"time"

	"github.com/google/uuid"
)

// HeaderPair preserves response header order across save/replay so a
// replayed response is byte-identical to the original.
type HeaderPair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SavedResponse is the cached outcome of a completed publish request.
type SavedResponse struct {
	StatusCode int
	Headers    []HeaderPair
	Body       []byte
}

func (r *SavedResponse) Header(name string) string {
	for _, h := range r.Headers {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}

// IdempotencyRecord is a row of the idempotency table. A record without a
// response is a placeholder: the request is in flight, not unknown.
type IdempotencyRecord struct {
	UserID    uuid.UUID
	Key       string
	Response  *SavedResponse
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (r *IdempotencyRecord) IsCompleted() bool {
	return r.Response != nil
}

// DeliveryTask is one claimed (issue, recipient) obligation.
type DeliveryTask struct {
	IssueID         uuid.UUID
	SubscriberEmail string
	NRetries        int32
}

type IssueContent struct {
	ID    uuid.UUID
	Title string
	HTML  string
	Text  string
}
