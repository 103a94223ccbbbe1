package mailer

import (
	"log/slog"

	"newsletter-service/internal/pkg/config"

	"gopkg.in/gomail.v2"
)

// Mailer is the outbound email transport. Callers classify failures
// themselves; the transport only reports success or error.
type Mailer interface {
	Send(recipient, subject, htmlBody, textBody string) error
}

type smtpMailer struct {
	dialer        *gomail.Dialer
	senderAddress string
	senderName    string
}

func NewSMTPMailer(cfg config.MailConfig) Mailer {
	slog.Info("initializing mail sender", "host", cfg.Host, "port", cfg.Port, "sender", cfg.SenderAddress)

	return &smtpMailer{
		dialer:        gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		senderAddress: cfg.SenderAddress,
		senderName:    cfg.SenderName,
	}
}

func (m *smtpMailer) Send(recipient, subject, htmlBody, textBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.senderAddress, m.senderName)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	msg.AddAlternative("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
