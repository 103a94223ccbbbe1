package subscriber

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPendingConfirmation Status = "pending_confirmation"
	StatusConfirmed           Status = "confirmed"
)

type Subscriber struct {
	id           uuid.UUID
	email        Email
	name         Name
	status       Status
	subscribedAt time.Time
}

func NewSubscriber(email, name string, now time.Time) (*Subscriber, error) {
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	return &Subscriber{
		id:           uuid.New(),
		email:        e,
		name:         n,
		status:       StatusPendingConfirmation,
		subscribedAt: now,
	}, nil
}

func (s *Subscriber) ID() uuid.UUID           { return s.id }
func (s *Subscriber) Email() Email            { return s.email }
func (s *Subscriber) Name() Name              { return s.name }
func (s *Subscriber) Status() Status          { return s.status }
func (s *Subscriber) SubscribedAt() time.Time { return s.subscribedAt }
