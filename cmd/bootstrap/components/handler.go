package components

import (
	"hospedagem-api/internal/handler"
	"hospedagem-api/internal/handler/api"
	"hospedagem-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewRoomHandler,
		api.NewClientHandler,
		api.NewBookingHandler,
		api.NewOccupancyHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
