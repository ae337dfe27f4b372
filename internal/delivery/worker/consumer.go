package worker

import (
	"context"
	"log/slog"

	"estate/config"
	"estate/internal/delivery"
	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/constants"
	"estate/internal/domain/entity"
	"estate/internal/domain/lifecycle"
	"estate/internal/errors"
	"estate/internal/infra/pubsub"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// eventSource is the queue side of pubsub.Consumer.
type eventSource interface {
	Run(ctx context.Context, handle pubsub.EventHandler) error
	Close() error
}

type queueConsumer struct {
	source        eventSource
	notifications usecase.NotificationUsecase
	logger        *slog.Logger

	stopping chan struct{}
	done     chan struct{}
}

type QueueConsumerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	Logger        *slog.Logger
	Notifications usecase.NotificationUsecase
}

// NewQueueConsumer drains the AMQP listing queue when the rabbitmq provider
// is configured. With any other provider Serve returns at once.
func NewQueueConsumer(params QueueConsumerParams) (delivery.Delivery, error) {
	qc := &queueConsumer{
		notifications: params.Notifications,
		logger:        params.Logger,
		stopping:      make(chan struct{}),
		done:          make(chan struct{}),
	}

	cfg := params.Cfg.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderRabbitMQ {
		return qc, nil
	}

	source, err := pubsub.NewRabbitMQConsumer(cfg.AMQPURL, cfg.Exchange, cfg.Queue, params.Logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create queue consumer")
	}
	qc.source = source

	params.Lc.Append(fx.Hook{
		OnStop: qc.stop,
	})

	return qc, nil
}

func (q *queueConsumer) Serve(ctx context.Context) error {
	defer close(q.done)

	if q.source == nil {
		q.logger.Info("Queue consumer disabled")

		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-q.stopping:
			cancel()
		case <-ctx.Done():
		}
	}()

	q.logger.Info("Starting listing queue consumer")

	return q.source.Run(ctx, q.handle)
}

func (q *queueConsumer) handle(ctx context.Context, event *entity.ListingEvent) error {
	requestID := event.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, q.logger.With(slog.String("request_id", requestID)))

	return q.notifications.HandleListingEvent(ctx, event)
}

// stop cancels the consume loop and waits for it before closing the channel.
func (q *queueConsumer) stop(ctx context.Context) error {
	close(q.stopping)

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.ShutdownTimeout)
	defer cancel()
	select {
	case <-q.done:
	case <-waitCtx.Done():
		q.logger.Warn("Queue consumer did not stop in time")
	}

	q.logger.Info("Closing listing queue consumer")

	return q.source.Close()
}
