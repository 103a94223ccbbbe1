//go:build unit || e2e

package mailtest

import (
	"fmt"
	"sync"
)

type SentMessage struct {
	Recipient string
	Subject   string
	HTMLBody  string
	TextBody  string
}

// FakeMailer records outbound messages instead of sending them. Failures
// can be injected per recipient to exercise retry handling.
type FakeMailer struct {
	mu       sync.Mutex
	sent     []SentMessage
	failures map[string]int
}

func NewFakeMailer() *FakeMailer {
	return &FakeMailer{failures: make(map[string]int)}
}

func (m *FakeMailer) Send(recipient, subject, htmlBody, textBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failures[recipient] > 0 {
		m.failures[recipient]--
		return fmt.Errorf("simulated send failure for %s", recipient)
	}

	m.sent = append(m.sent, SentMessage{
		Recipient: recipient,
		Subject:   subject,
		HTMLBody:  htmlBody,
		TextBody:  textBody,
	})
	return nil
}

// FailNext makes the next n sends to recipient fail.
func (m *FakeMailer) FailNext(recipient string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[recipient] = n
}

func (m *FakeMailer) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.sent))
	copy(out, m.sent)
	return out
}

func (m *FakeMailer) SentTo(recipient string) []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []SentMessage
	for _, msg := range m.sent {
		if msg.Recipient == recipient {
			out = append(out, msg)
		}
	}
	return out
}

func (m *FakeMailer) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *FakeMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
	m.failures = make(map[string]int)
}
