package components

import (
	"newsletter-service/internal/infra/readstore"
	"newsletter-service/internal/infra/repository"
	"newsletter-service/internal/infra/uow"
	"newsletter-service/internal/usecase/queries"
	"newsletter-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewNewsletterReadStore,
			fx.As(new(queries.NewsletterReadStore)),
		),
		fx.Annotate(
			readstore.NewSubscriberReadStore,
			fx.As(new(queries.SubscriberReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewNewsletterIssueRepository,
			fx.As(new(shared.NewsletterIssueRepository)),
		),
		fx.Annotate(
			repository.NewDeliveryQueueRepository,
			fx.As(new(shared.DeliveryQueueRepository)),
		),
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(shared.IdempotencyRepository)),
		),
		fx.Annotate(
			repository.NewSubscriberRepository,
			fx.As(new(shared.SubscriberRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(shared.UserRepository)),
		),
	),
)
