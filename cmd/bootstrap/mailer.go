package bootstrap

import (
	"newsletter-service/internal/pkg/config"
	"newsletter-service/internal/pkg/mailer"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailer,
	),
)

func NewMailer(cfg config.Config) mailer.Mailer {
	return mailer.NewSMTPMailer(cfg.Mail)
}
