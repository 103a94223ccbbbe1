package components

import (
	"newsletter-service/internal/handler"
	"newsletter-service/internal/handler/api"
	"newsletter-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSubscriptionHandler,
		api.NewNewsletterHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
