package subscriber

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail = errors.New("invalid subscriber email")
	ErrInvalidName  = errors.New("invalid subscriber name")
)

const maxNameLength = 256

var forbiddenNameChars = "/()\"<>\\{}"

// Email is a structurally validated subscriber address. Queue entries store
// the raw string; the worker re-parses it before every send, so an address
// corrupted after enqueue is caught as a permanent failure rather than
// retried forever.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > 254 {
		return Email{}, ErrInvalidEmail
	}

	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return Email{}, ErrInvalidEmail
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return Email{}, ErrInvalidEmail
	}
	domain := s[at+1:]
	if !strings.Contains(domain, ".") || strings.Contains(s[at+1:], "@") {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > maxNameLength {
		return Name{}, ErrInvalidName
	}
	if strings.ContainsAny(trimmed, forbiddenNameChars) {
		return Name{}, ErrInvalidName
	}
	return Name{value: trimmed}, nil
}

func (n Name) Value() string {
	return n.value
}
