package api

import (
	"estate/internal/delivery/api/middleware"
	"estate/internal/delivery/api/router/handler"

	"go.uber.org/fx"
)

// Module provides the API server into the deliveries group together with
// its handlers and middleware.
var Module = fx.Options(
	fx.Provide(
		middleware.NewAuthMiddleware,
		handler.NewAuthHandler,
		handler.NewUserHandler,
		handler.NewDeviceHandler,
		handler.NewPropertyHandler,
		handler.NewAdminHandler,
		fx.Annotate(
			NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	),
)
