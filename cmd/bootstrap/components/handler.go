package components

import (
	"timebar/internal/handler"
	"timebar/internal/handler/api"
	"timebar/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewTimerHandler,
		api.NewStorefrontHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
