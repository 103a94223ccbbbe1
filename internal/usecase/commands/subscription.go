package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"

	"newsletter-service/internal/domain/subscriber"
	reqdto "newsletter-service/internal/handler/dto/request"
	"newsletter-service/internal/infra"
	"newsletter-service/internal/pkg/clock"
	"newsletter-service/internal/pkg/errs"
	"newsletter-service/internal/pkg/mailer"
	"newsletter-service/internal/usecase/shared"
)

var (
	ErrInvalidSubscription      = errs.New("invalid subscription request")
	ErrSubscriptionFailed       = errs.New("subscription failed")
	ErrConfirmationEmail        = errs.New("failed to send confirmation email")
	ErrSubscriptionTokenInvalid = errs.New("invalid subscription token")
)

const subscriptionTokenLength = 25

type SubscriptionCommands interface {
	Subscribe(ctx context.Context, req reqdto.SubscribeRequest) error
	Confirm(ctx context.Context, token string) error
}

type subscriptionCommandsImpl struct {
	uow     shared.UnitOfWork
	mailer  mailer.Mailer
	clock   clock.Clock
	baseURL string
}

func NewSubscriptionCommands(uow shared.UnitOfWork, m mailer.Mailer, clk clock.Clock, baseURL string) SubscriptionCommands {
	return &subscriptionCommandsImpl{
		uow:     uow,
		mailer:  m,
		clock:   clk,
		baseURL: baseURL,
	}
}

func (s *subscriptionCommandsImpl) Subscribe(ctx context.Context, req reqdto.SubscribeRequest) error {
	sub, err := subscriber.NewSubscriber(req.Email, req.Name, s.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrInvalidSubscription)
	}

	token, err := generateSubscriptionToken()
	if err != nil {
		return errs.Mark(err, ErrSubscriptionFailed)
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		subscriberID, err := tx.Subscribers().Upsert(ctx, tx.DB(), sub)
		if err != nil {
			return err
		}
		return tx.Subscribers().StoreToken(ctx, tx.DB(), subscriberID, token)
	})
	if err != nil {
		return errs.Mark(err, ErrSubscriptionFailed)
	}

	if err := s.sendConfirmationEmail(sub, token); err != nil {
		slog.Error("failed to send confirmation email",
			"email", sub.Email().Value(),
			"error", err.Error())
		return errs.Mark(err, ErrConfirmationEmail)
	}

	return nil
}

func (s *subscriptionCommandsImpl) Confirm(ctx context.Context, token string) error {
	if token == "" || len(token) > 64 {
		return ErrSubscriptionTokenInvalid
	}

	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		subscriberID, err := tx.Subscribers().ConfirmByToken(ctx, tx.DB(), token)
		if err != nil {
			return err
		}
		slog.Info("subscription confirmed", "subscriber_id", subscriberID)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSubscriptionTokenInvalid
		}
		return errs.Mark(err, ErrSubscriptionFailed)
	}

	return nil
}

func (s *subscriptionCommandsImpl) sendConfirmationEmail(sub *subscriber.Subscriber, token string) error {
	confirmationLink := fmt.Sprintf("%s/api/subscriptions/confirm?subscription_token=%s", s.baseURL, token)

	htmlBody := fmt.Sprintf(
		"Welcome to our newsletter!<br />Click <a href=\"%s\">here</a> to confirm your subscription.",
		confirmationLink)
	textBody := fmt.Sprintf(
		"Welcome to our newsletter!\nVisit %s to confirm your subscription.",
		confirmationLink)

	return s.mailer.Send(sub.Email().Value(), "Welcome!", htmlBody, textBody)
}

func generateSubscriptionToken() (string, error) {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	token := make([]byte, subscriptionTokenLength)
	for i := range token {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", errs.Wrap(err, "failed to generate subscription token")
		}
		token[i] = alphabet[idx.Int64()]
	}

	return string(token), nil
}
