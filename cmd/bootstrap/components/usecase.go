package components

import (
	"newsletter-service/internal/pkg/clock"
	"newsletter-service/internal/pkg/config"
	"newsletter-service/internal/pkg/mailer"
	"newsletter-service/internal/usecase"
	"newsletter-service/internal/usecase/commands"
	"newsletter-service/internal/usecase/queries"
	"newsletter-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		NewNewsletterCommands,
		NewSubscriptionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewNewsletterQueries,
		queries.NewSubscriberQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewNewsletterCommands(
	u shared.UnitOfWork,
	idempotencyRepo shared.IdempotencyRepository,
	clk clock.Clock,
	cfg config.Config,
) commands.NewsletterCommands {
	return commands.NewNewsletterCommands(u, idempotencyRepo, clk, cfg.Worker.IdempotencyTTL)
}

func NewSubscriptionCommands(
	u shared.UnitOfWork,
	m mailer.Mailer,
	clk clock.Clock,
	cfg config.Config,
) commands.SubscriptionCommands {
	return commands.NewSubscriptionCommands(u, m, clk, cfg.Server.BaseURL)
}
