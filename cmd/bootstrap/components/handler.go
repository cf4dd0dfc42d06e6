package components

import (
	"foodshare/internal/handler"
	"foodshare/internal/handler/api"
	"foodshare/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDonationHandler,
		api.NewOrderHandler,
		api.NewPerishableHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
