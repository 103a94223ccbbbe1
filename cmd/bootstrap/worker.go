package bootstrap

import (
	"context"
	"time"

	"newsletter-service/internal/pkg/config"
	"newsletter-service/internal/pkg/mailer"
	"newsletter-service/internal/usecase/shared"
	"newsletter-service/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewDeliveryWorker,
	),
	fx.Invoke(StartDeliveryWorker),
)

const idempotencyCleanupInterval = time.Hour

func NewDeliveryWorker(
	pool *pgxpool.Pool,
	deliveries shared.DeliveryQueueRepository,
	issues shared.NewsletterIssueRepository,
	idempotency shared.IdempotencyRepository,
	m mailer.Mailer,
	cfg config.Config,
) *worker.DeliveryWorker {
	return worker.NewDeliveryWorker(pool, deliveries, issues, idempotency, m, cfg.Worker)
}

func StartDeliveryWorker(lc fx.Lifecycle, w *worker.DeliveryWorker) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				w.Run(ctx)
			}()
			go w.RunCleanup(ctx, idempotencyCleanupInterval)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
