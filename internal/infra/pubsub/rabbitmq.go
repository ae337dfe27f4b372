package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"estate/internal/domain/entity"
	"estate/internal/domain/service"
	"estate/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	exchangeKind      = "topic"
	listingBindingKey = "listing.#"
	publishTimeout    = 10 * time.Second
)

// amqpChannel is the subset of *amqp.Channel used by publisher and consumer.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	Qos(prefetchCount, prefetchSize int, global bool) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

func dialChannel(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, errors.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, nil, errors.Wrap(err, "open rabbitmq channel")
	}

	if err := declareExchange(ch, exchange); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, nil, err
	}

	return conn, ch, nil
}

func declareExchange(ch amqpChannel, exchange string) error {
	err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil)

	return errors.Wrapf(err, "declare exchange %s", exchange)
}

type rabbitMQPublisher struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
	logger   *slog.Logger
}

// NewRabbitMQPublisher routes each event by its type on a durable topic exchange.
func NewRabbitMQPublisher(url, exchange string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, ch, err := dialChannel(url, exchange)
	if err != nil {
		return nil, err
	}

	logger.Info("RabbitMQ publisher initialized", slog.String("exchange", exchange))

	return &rabbitMQPublisher{conn: conn, channel: ch, exchange: exchange, logger: logger}, nil
}

func (p *rabbitMQPublisher) PublishListingEvent(ctx context.Context, event *entity.ListingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range eventAttributes(event) {
		headers[k] = v
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Headers:      headers,
	}
	if event.RequestID != "" {
		msg.CorrelationId = event.RequestID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.channel.PublishWithContext(publishCtx, p.exchange, string(event.Type), false, false, msg); err != nil {
		return errors.Wrap(err, "publish listing event")
	}

	p.logger.Debug("[RabbitMQ] event published",
		slog.String("routing_key", string(event.Type)),
		slog.String("listing_id", event.ListingID.String()),
	)

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	var errs []error
	if p.channel != nil {
		errs = append(errs, p.channel.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}

	return errors.Join(errs...)
}

// EventHandler processes one decoded listing event.
type EventHandler func(ctx context.Context, event *entity.ListingEvent) error

// Consumer drains the listing queue into an EventHandler.
type Consumer struct {
	conn    *amqp.Connection
	channel amqpChannel
	queue   string
	logger  *slog.Logger
}

// NewRabbitMQConsumer declares a durable queue bound to every listing event.
func NewRabbitMQConsumer(url, exchange, queue string, logger *slog.Logger) (*Consumer, error) {
	conn, ch, err := dialChannel(url, exchange)
	if err != nil {
		return nil, err
	}

	c := &Consumer{conn: conn, channel: ch, queue: queue, logger: logger}
	if err := c.setup(exchange); err != nil {
		_ = c.Close()

		return nil, err
	}

	return c, nil
}

func (c *Consumer) setup(exchange string) error {
	if err := c.channel.Qos(16, 0, false); err != nil {
		return errors.Wrap(err, "set qos")
	}

	q, err := c.channel.QueueDeclare(c.queue, true, false, false, false, nil)
	if err != nil {
		return errors.Wrapf(err, "declare queue %s", c.queue)
	}
	c.queue = q.Name

	return errors.Wrap(c.channel.QueueBind(c.queue, listingBindingKey, exchange, false, nil), "bind queue")
}

// Run blocks until ctx is done or the delivery channel closes.
func (c *Consumer) Run(ctx context.Context, handle EventHandler) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "start consuming")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.dispatch(ctx, d, handle)
		}
	}
}

// dispatch acks handled and undecodable messages. A handler failure is
// requeued once and dropped when it fails again.
func (c *Consumer) dispatch(ctx context.Context, d amqp.Delivery, handle EventHandler) {
	event, err := DecodeEvent(d.Body)
	if err != nil {
		c.logger.ErrorContext(ctx, "dropping malformed listing event", slog.Any("error", err))
		_ = d.Nack(false, false)

		return
	}

	if err := handle(ctx, event); err != nil {
		c.logger.ErrorContext(ctx, "listing event handler failed",
			slog.String("event_type", string(event.Type)),
			slog.Bool("redelivered", d.Redelivered),
			slog.Any("error", err),
		)
		_ = d.Nack(false, !d.Redelivered)

		return
	}

	_ = d.Ack(false)
}

func (c *Consumer) Close() error {
	var errs []error
	if c.channel != nil {
		errs = append(errs, c.channel.Close())
	}
	if c.conn != nil {
		errs = append(errs, c.conn.Close())
	}

	return errors.Join(errs...)
}
