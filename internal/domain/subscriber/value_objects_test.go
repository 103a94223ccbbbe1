//go:build unit

package subscriber_test

import (
	"strings"
	"testing"
	"time"

	"newsletter-service/internal/domain/subscriber"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid address", input: "ursula@example.com", want: "ursula@example.com"},
		{name: "surrounding whitespace is trimmed", input: "  ursula@example.com  ", want: "ursula@example.com"},
		{name: "plus addressing", input: "ursula+news@example.com", want: "ursula+news@example.com"},
		{name: "empty", input: "", errIs: subscriber.ErrInvalidEmail},
		{name: "missing at sign", input: "ursula.example.com", errIs: subscriber.ErrInvalidEmail},
		{name: "missing local part", input: "@example.com", errIs: subscriber.ErrInvalidEmail},
		{name: "missing domain", input: "ursula@", errIs: subscriber.ErrInvalidEmail},
		{name: "domain without dot", input: "ursula@example", errIs: subscriber.ErrInvalidEmail},
		{name: "two at signs", input: "ursula@le@guin.com", errIs: subscriber.ErrInvalidEmail},
		{name: "interior whitespace", input: "ursula le guin@example.com", errIs: subscriber.ErrInvalidEmail},
		{name: "longer than 254 characters", input: strings.Repeat("a", 250) + "@e.com", errIs: subscriber.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := subscriber.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.Value())
		})
	}
}

func TestNewName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid name", input: "Ursula Le Guin", want: "Ursula Le Guin"},
		{name: "surrounding whitespace is trimmed", input: "  Ursula  ", want: "Ursula"},
		{name: "256 characters is the longest accepted", input: strings.Repeat("n", 256), want: strings.Repeat("n", 256)},
		{name: "empty", input: "", errIs: subscriber.ErrInvalidName},
		{name: "whitespace only", input: "   ", errIs: subscriber.ErrInvalidName},
		{name: "257 characters is rejected", input: strings.Repeat("n", 257), errIs: subscriber.ErrInvalidName},
		{name: "forward slash is forbidden", input: "Ursula/Le Guin", errIs: subscriber.ErrInvalidName},
		{name: "angle brackets are forbidden", input: "<script>", errIs: subscriber.ErrInvalidName},
		{name: "quotes are forbidden", input: `Ursula "K" Le Guin`, errIs: subscriber.ErrInvalidName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name, err := subscriber.NewName(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, name.Value())
		})
	}
}

func TestNewSubscriber(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("new subscriber starts pending confirmation", func(t *testing.T) {
		sub, err := subscriber.NewSubscriber("ursula@example.com", "Ursula", now)
		require.NoError(t, err)

		assert.Equal(t, subscriber.StatusPendingConfirmation, sub.Status())
		assert.Equal(t, "ursula@example.com", sub.Email().Value())
		assert.Equal(t, "Ursula", sub.Name().Value())
		assert.Equal(t, now, sub.SubscribedAt())
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		_, err := subscriber.NewSubscriber("not-an-email", "Ursula", now)
		assert.ErrorIs(t, err, subscriber.ErrInvalidEmail)
	})

	t.Run("invalid name is rejected", func(t *testing.T) {
		_, err := subscriber.NewSubscriber("ursula@example.com", "", now)
		assert.ErrorIs(t, err, subscriber.ErrInvalidName)
	})
}
