package newsletter

import (
	"errors"
	"strings"
)

var (
	ErrEmptyIdempotencyKey   = errors.New("idempotency key cannot be empty")
	ErrIdempotencyKeyTooLong = errors.New("idempotency key is too long")
	ErrEmptyTitle            = errors.New("issue title cannot be empty")
	ErrEmptyContent          = errors.New("issue content cannot be empty")
)

const maxIdempotencyKeyLength = 50

// IdempotencyKey is a client-supplied token identifying one logical publish
// request. The (user, key) pair is the dedup identity.
type IdempotencyKey struct {
	value string
}

func NewIdempotencyKey(s string) (IdempotencyKey, error) {
	if s == "" {
		return IdempotencyKey{}, ErrEmptyIdempotencyKey
	}
	if len(s) >= maxIdempotencyKeyLength {
		return IdempotencyKey{}, ErrIdempotencyKeyTooLong
	}
	return IdempotencyKey{value: s}, nil
}

func (k IdempotencyKey) Value() string {
	return k.value
}

type Content struct {
	Title string
	HTML  string
	Text  string
}

func NewContent(title, html, text string) (Content, error) {
	if strings.TrimSpace(title) == "" {
		return Content{}, ErrEmptyTitle
	}
	if strings.TrimSpace(html) == "" || strings.TrimSpace(text) == "" {
		return Content{}, ErrEmptyContent
	}
	return Content{Title: title, HTML: html, Text: text}, nil
}
