package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"newsletter-service/internal/domain/newsletter"
	reqdto "newsletter-service/internal/handler/dto/request"
	"newsletter-service/internal/infra"
	"newsletter-service/internal/infra/db"
	"newsletter-service/internal/pkg/clock"
	"newsletter-service/internal/pkg/errs"
	"newsletter-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidIdempotencyKey  = errs.New("invalid idempotency key")
	ErrInvalidIssueContent    = errs.New("invalid issue content")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
	ErrPublishInProgress      = errs.New("publish already in progress")
	ErrPublishFailed          = errs.New("publish failed")
)

const (
	// How long a concurrent duplicate waits for the first request to
	// complete before giving up with a conflict.
	replayPollAttempts = 20
	replayPollInterval = 100 * time.Millisecond

	publishedRedirectPath = "/admin/newsletters"
	publishedMessage      = "The newsletter issue has been accepted - emails will go out shortly."
)

type PublishResult struct {
	Response   shared.SavedResponse
	IsReplayed bool
}

type NewsletterCommands interface {
	PublishIssue(ctx context.Context, req reqdto.PublishNewsletterRequest, userID uuid.UUID) (*PublishResult, error)
}

type newsletterCommandsImpl struct {
	uow             shared.UnitOfWork
	idempotencyRepo shared.IdempotencyRepository
	clock           clock.Clock
	idempotencyTTL  time.Duration
}

func NewNewsletterCommands(
	uow shared.UnitOfWork,
	idempotencyRepo shared.IdempotencyRepository,
	clk clock.Clock,
	idempotencyTTL time.Duration,
) NewsletterCommands {
	return &newsletterCommandsImpl{
		uow:             uow,
		idempotencyRepo: idempotencyRepo,
		clock:           clk,
		idempotencyTTL:  idempotencyTTL,
	}
}

func (n *newsletterCommandsImpl) PublishIssue(
	ctx context.Context,
	req reqdto.PublishNewsletterRequest,
	userID uuid.UUID,
) (*PublishResult, error) {
	key, err := newsletter.NewIdempotencyKey(req.IdempotencyKey)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidIdempotencyKey)
	}

	content, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidIssueContent)
	}

	// The placeholder is claimed outside the publish transaction so that
	// concurrent duplicates see it immediately.
	now := n.clock.Now()
	var owned bool
	err = n.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var claimErr error
		owned, claimErr = n.idempotencyRepo.TryClaim(ctx, dbtx, userID, key, now, now.Add(n.idempotencyTTL))
		return claimErr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if !owned {
		saved, err := n.awaitSavedResponse(ctx, userID, key)
		if err != nil {
			return nil, err
		}
		return &PublishResult{Response: *saved, IsReplayed: true}, nil
	}

	response := canonicalPublishResponse()

	err = n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		issueID, err := tx.Issues().Create(ctx, tx.DB(), content, now)
		if err != nil {
			return err
		}

		enqueued, err := tx.Deliveries().EnqueueForIssue(ctx, tx.DB(), issueID, now)
		if err != nil {
			return err
		}
		slog.Info("newsletter issue published",
			"issue_id", issueID,
			"enqueued_deliveries", enqueued)

		return tx.Idempotency().SaveResponse(ctx, tx.DB(), userID, key, response)
	})
	if err != nil {
		n.releaseClaim(ctx, userID, key)
		return nil, errs.Mark(err, ErrPublishFailed)
	}

	return &PublishResult{Response: response, IsReplayed: false}, nil
}

// awaitSavedResponse handles the losing side of a claim race. A completed
// record replays immediately; an in-flight one is polled briefly so that
// concurrent duplicates of the same request converge on one response.
func (n *newsletterCommandsImpl) awaitSavedResponse(
	ctx context.Context,
	userID uuid.UUID,
	key newsletter.IdempotencyKey,
) (*shared.SavedResponse, error) {
	for attempt := 0; attempt < replayPollAttempts; attempt++ {
		var record *shared.IdempotencyRecord
		err := n.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
			var findErr error
			record, findErr = n.idempotencyRepo.Find(ctx, dbtx, userID, key)
			return findErr
		})
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// The owner released its claim after a failure. Let the
				// client retry rather than claim mid-flight.
				return nil, ErrPublishInProgress
			}
			return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		if record.IsCompleted() {
			return record.Response, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(replayPollInterval):
		}
	}

	return nil, ErrPublishInProgress
}

func (n *newsletterCommandsImpl) releaseClaim(ctx context.Context, userID uuid.UUID, key newsletter.IdempotencyKey) {
	err := n.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return n.idempotencyRepo.Release(ctx, dbtx, userID, key)
	})
	if err != nil {
		slog.Warn("failed to release idempotency claim",
			"user_id", userID,
			"idempotency_key", key.Value(),
			"error", err.Error())
	}
}

func canonicalPublishResponse() shared.SavedResponse {
	body, _ := json.Marshal(map[string]string{"message": publishedMessage})
	return shared.SavedResponse{
		StatusCode: http.StatusSeeOther,
		Headers: []shared.HeaderPair{
			{Name: "Location", Value: publishedRedirectPath},
			{Name: "Content-Type", Value: "application/json; charset=utf-8"},
		},
		Body: body,
	}
}
