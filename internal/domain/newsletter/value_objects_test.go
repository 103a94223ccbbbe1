//go:build unit

package newsletter_test

import (
	"strings"
	"testing"

	"newsletter-service/internal/domain/newsletter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdempotencyKey(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid key", input: "abc-123"},
		{name: "single character", input: "x"},
		{name: "49 characters is the longest accepted", input: strings.Repeat("k", 49)},
		{name: "empty key", input: "", errIs: newsletter.ErrEmptyIdempotencyKey},
		{name: "50 characters is rejected", input: strings.Repeat("k", 50), errIs: newsletter.ErrIdempotencyKeyTooLong},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := newsletter.NewIdempotencyKey(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, key.Value())
		})
	}
}

func TestNewContent(t *testing.T) {
	cases := []struct {
		name              string
		title, html, text string
		errIs             error
	}{
		{name: "valid content", title: "Issue #1", html: "<p>Hello</p>", text: "Hello"},
		{name: "empty title", title: "", html: "<p>Hello</p>", text: "Hello", errIs: newsletter.ErrEmptyTitle},
		{name: "whitespace title", title: "   ", html: "<p>Hello</p>", text: "Hello", errIs: newsletter.ErrEmptyTitle},
		{name: "empty html body", title: "Issue #1", html: "", text: "Hello", errIs: newsletter.ErrEmptyContent},
		{name: "empty text body", title: "Issue #1", html: "<p>Hello</p>", text: "", errIs: newsletter.ErrEmptyContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content, err := newsletter.NewContent(tc.title, tc.html, tc.text)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.title, content.Title)
			assert.Equal(t, tc.html, content.HTML)
			assert.Equal(t, tc.text, content.Text)
		})
	}
}
