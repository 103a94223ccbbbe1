//go:build unit

package commands_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"newsletter-service/internal/domain/newsletter"
	reqdto "newsletter-service/internal/handler/dto/request"
	"newsletter-service/internal/infra"
	"newsletter-service/internal/infra/db"
	"newsletter-service/internal/pkg/clock"
	"newsletter-service/internal/usecase/commands"
	"newsletter-service/internal/usecase/shared"
	sharedmock "newsletter-service/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type fakeTx struct {
	issues      shared.NewsletterIssueRepository
	deliveries  shared.DeliveryQueueRepository
	idempotency shared.IdempotencyRepository
	subscribers shared.SubscriberRepository
	users       shared.UserRepository
}

func (t *fakeTx) Issues() shared.NewsletterIssueRepository   { return t.issues }
func (t *fakeTx) Deliveries() shared.DeliveryQueueRepository { return t.deliveries }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository  { return t.idempotency }
func (t *fakeTx) Subscribers() shared.SubscriberRepository   { return t.subscribers }
func (t *fakeTx) Users() shared.UserRepository               { return t.users }
func (t *fakeTx) DB() db.DBTX                                { return nil }

// fakeUoW runs transaction callbacks directly against mock repositories.
type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type NewsletterCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockIssues      *sharedmock.MockNewsletterIssueRepository
	mockDeliveries  *sharedmock.MockDeliveryQueueRepository
	mockIdempotency *sharedmock.MockIdempotencyRepository
	clock           *clock.MockClock
	commands        commands.NewsletterCommands

	userID uuid.UUID
	ttl    time.Duration
}

func (s *NewsletterCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockIssues = sharedmock.NewMockNewsletterIssueRepository(s.mockCtrl)
	s.mockDeliveries = sharedmock.NewMockDeliveryQueueRepository(s.mockCtrl)
	s.mockIdempotency = sharedmock.NewMockIdempotencyRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.userID = uuid.New()
	s.ttl = 24 * time.Hour

	uow := &fakeUoW{tx: &fakeTx{
		issues:      s.mockIssues,
		deliveries:  s.mockDeliveries,
		idempotency: s.mockIdempotency,
	}}
	s.commands = commands.NewNewsletterCommands(uow, s.mockIdempotency, s.clock, s.ttl)
}

func (s *NewsletterCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNewsletterCommandsSuite(t *testing.T) {
	suite.Run(t, new(NewsletterCommandsTestSuite))
}

func publishRequest() reqdto.PublishNewsletterRequest {
	return reqdto.PublishNewsletterRequest{
		Title:          "Issue #1",
		HTMLContent:    "<p>Hello</p>",
		TextContent:    "Hello",
		IdempotencyKey: "abc-123",
	}
}

func (s *NewsletterCommandsTestSuite) key() newsletter.IdempotencyKey {
	key, err := newsletter.NewIdempotencyKey("abc-123")
	s.Require().NoError(err)
	return key
}

func (s *NewsletterCommandsTestSuite) TestPublishIssue() {
	ctx := context.Background()

	s.Run("success: owned claim creates issue, enqueues deliveries and saves response", func() {
		now := s.clock.Now()
		issueID := uuid.New()
		var saved shared.SavedResponse

		s.mockIdempotency.EXPECT().
			TryClaim(gomock.Any(), gomock.Any(), s.userID, s.key(), now, now.Add(s.ttl)).
			Return(true, nil).Times(1)
		s.mockIssues.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any(), now).
			Return(issueID, nil).Times(1)
		s.mockDeliveries.EXPECT().
			EnqueueForIssue(gomock.Any(), gomock.Any(), issueID, now).
			Return(int64(2), nil).Times(1)
		s.mockIdempotency.EXPECT().
			SaveResponse(gomock.Any(), gomock.Any(), s.userID, s.key(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, _ uuid.UUID, _ newsletter.IdempotencyKey, response shared.SavedResponse) error {
				saved = response
				return nil
			}).Times(1)

		result, err := s.commands.PublishIssue(ctx, publishRequest(), s.userID)

		s.Require().NoError(err)
		s.False(result.IsReplayed)
		s.Equal(http.StatusSeeOther, result.Response.StatusCode)
		s.Equal("/admin/newsletters", result.Response.Header("Location"))
		s.Contains(string(result.Response.Body), "accepted")

		// The returned response and the stored one must be the same bytes.
		s.Empty(cmp.Diff(saved, result.Response))
	})

	s.Run("success: completed record replays the original response", func() {
		original := shared.SavedResponse{
			StatusCode: http.StatusSeeOther,
			Headers: []shared.HeaderPair{
				{Name: "Location", Value: "/admin/newsletters"},
				{Name: "Content-Type", Value: "application/json; charset=utf-8"},
			},
			Body: []byte(`{"message":"The newsletter issue has been accepted - emails will go out shortly."}`),
		}

		s.mockIdempotency.EXPECT().
			TryClaim(gomock.Any(), gomock.Any(), s.userID, s.key(), gomock.Any(), gomock.Any()).
			Return(false, nil).Times(1)
		s.mockIdempotency.EXPECT().
			Find(gomock.Any(), gomock.Any(), s.userID, s.key()).
			Return(&shared.IdempotencyRecord{Response: &original}, nil).Times(1)

		result, err := s.commands.PublishIssue(ctx, publishRequest(), s.userID)

		s.Require().NoError(err)
		s.True(result.IsReplayed)
		s.Empty(cmp.Diff(original, result.Response))
	})

	s.Run("success: in-flight record is polled until the owner completes", func() {
		completed := shared.SavedResponse{
			StatusCode: http.StatusSeeOther,
			Body:       []byte(`{"message":"done"}`),
		}

		s.mockIdempotency.EXPECT().
			TryClaim(gomock.Any(), gomock.Any(), s.userID, s.key(), gomock.Any(), gomock.Any()).
			Return(false, nil).Times(1)
		gomock.InOrder(
			s.mockIdempotency.EXPECT().
				Find(gomock.Any(), gomock.Any(), s.userID, s.key()).
				Return(&shared.IdempotencyRecord{}, nil).Times(2),
			s.mockIdempotency.EXPECT().
				Find(gomock.Any(), gomock.Any(), s.userID, s.key()).
				Return(&shared.IdempotencyRecord{Response: &completed}, nil).Times(1),
		)

		result, err := s.commands.PublishIssue(ctx, publishRequest(), s.userID)

		s.Require().NoError(err)
		s.True(result.IsReplayed)
		s.Equal(completed.Body, result.Response.Body)
	})

	s.Run("error: record that never completes yields ErrPublishInProgress", func() {
		s.mockIdempotency.EXPECT().
			TryClaim(gomock.Any(), gomock.Any(), s.userID, s.key(), gomock.Any(), gomock.Any()).
			Return(false, nil).Times(1)
		s.mockIdempotency.EXPECT().
			Find(gomock.Any(), gomock.Any(), s.userID, s.key()).
			Return(&shared.IdempotencyRecord{}, nil).AnyTimes()

		result, err := s.commands.PublishIssue(ctx, publishRequest(), s.userID)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrPublishInProgress)
	})

	s.Run("error: released claim yields ErrPublishInProgress so the client retries", func() {
		s.mockIdempotency.EXPECT().
			TryClaim(gomock.Any(), gomock.Any(), s.userID, s.key(), gomock.Any(), gomock.Any()).
			Return(false, nil).Times(1)
		s.mockIdempotency.EXPECT().
			Find(gomock.Any(), gomock.Any(), s.userID, s.key()).
			Return(nil, infra.WrapRepoErr("idempotency record not found", nil, infra.KindNotFound)).Times(1)

		result, err := s.commands.PublishIssue(ctx, publishRequest(), s.userID)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrPublishInProgress)
	})

	s.Run("error: failed transaction releases the claim", func() {
		now := s.clock.Now()

		s.mockIdempotency.EXPECT().
			TryClaim(gomock.Any(), gomock.Any(), s.userID, s.key(), now, now.Add(s.ttl)).
			Return(true, nil).Times(1)
		s.mockIssues.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any(), now).
			Return(uuid.Nil, infra.WrapRepoErr("insert failed", nil, infra.KindDBFailure)).Times(1)
		s.mockIdempotency.EXPECT().
			Release(gomock.Any(), gomock.Any(), s.userID, s.key()).
			Return(nil).Times(1)

		result, err := s.commands.PublishIssue(ctx, publishRequest(), s.userID)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrPublishFailed)
	})

	s.Run("error: claim failure yields ErrIdempotencyCheckFailed", func() {
		s.mockIdempotency.EXPECT().
			TryClaim(gomock.Any(), gomock.Any(), s.userID, s.key(), gomock.Any(), gomock.Any()).
			Return(false, infra.WrapRepoErr("claim failed", nil, infra.KindDBFailure)).Times(1)

		result, err := s.commands.PublishIssue(ctx, publishRequest(), s.userID)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrIdempotencyCheckFailed)
	})

	s.Run("error: invalid idempotency key", func() {
		req := publishRequest()
		req.IdempotencyKey = ""

		result, err := s.commands.PublishIssue(ctx, req, s.userID)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrInvalidIdempotencyKey)
	})

	s.Run("error: invalid issue content", func() {
		req := publishRequest()
		req.Title = "   "

		result, err := s.commands.PublishIssue(ctx, req, s.userID)

		s.Nil(result)
		s.ErrorIs(err, commands.ErrInvalidIssueContent)
	})
}
