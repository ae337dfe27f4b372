package worker

import (
	"estate/internal/delivery/worker/handler"

	"go.uber.org/fx"
)

// Module provides the push server and the queue consumer as deliveries.
var Module = fx.Options(
	fx.Provide(
		handler.NewPushHandler,
		fx.Annotate(
			NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
		fx.Annotate(
			NewQueueConsumer,
			fx.ResultTags(`group:"deliveries"`),
		),
	),
)
