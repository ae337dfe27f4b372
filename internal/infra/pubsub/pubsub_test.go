package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estate/config"
	"estate/internal/domain/entity"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *entity.ListingEvent {
	owner := uuid.New()

	return &entity.ListingEvent{
		Type:        entity.ListingEventSold,
		ListingID:   uuid.New(),
		CustomID:    "S3-2",
		OwnerUserID: &owner,
		ActorID:     owner,
		RequestID:   "req-1",
		OccurredAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	event := sampleEvent()
	var received PushEnvelope

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishListingEvent(context.Background(), event))

	decoded, err := received.Event()
	require.NoError(t, err)
	assert.Equal(t, event.ListingID, decoded.ListingID)
	assert.Equal(t, entity.ListingEventSold, decoded.Type)
	assert.Equal(t, "listing.sold", received.Message.Attributes["event_type"])
}

func TestLocalHTTPPublisher_WorkerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, discardLogger()).PublishListingEvent(context.Background(), sampleEvent())
	assert.Error(t, err)
}

func TestDecodeEvent_UnknownType(t *testing.T) {
	_, err := DecodeEvent([]byte(`{"type":"listing.exploded"}`))
	assert.Error(t, err)

	_, err = DecodeEvent([]byte(`not json`))
	assert.Error(t, err)
}

type fakeChannel struct {
	published  []amqp.Publishing
	keys       []string
	deliveries chan amqp.Delivery
}

func (f *fakeChannel) ExchangeDeclare(string, string, bool, bool, bool, bool, amqp.Table) error {
	return nil
}

func (f *fakeChannel) QueueDeclare(name string, _, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	return amqp.Queue{Name: name}, nil
}

func (f *fakeChannel) QueueBind(string, string, string, bool, amqp.Table) error { return nil }

func (f *fakeChannel) Qos(int, int, bool) error { return nil }

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)

	return nil
}

func (f *fakeChannel) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	return f.deliveries, nil
}

func (f *fakeChannel) Close() error { return nil }

func TestRabbitMQPublisher_RoutesByEventType(t *testing.T) {
	ch := &fakeChannel{}
	publisher := &rabbitMQPublisher{channel: ch, exchange: "estate.listings", logger: discardLogger()}

	event := sampleEvent()
	require.NoError(t, publisher.PublishListingEvent(context.Background(), event))

	require.Len(t, ch.published, 1)
	assert.Equal(t, []string{"listing.sold"}, ch.keys)
	assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)
	assert.Equal(t, "req-1", ch.published[0].CorrelationId)

	decoded, err := DecodeEvent(ch.published[0].Body)
	require.NoError(t, err)
	assert.Equal(t, event.CustomID, decoded.CustomID)
}

type recordingAcker struct {
	acked, nacked, requeued int
}

func (a *recordingAcker) Ack(uint64, bool) error {
	a.acked++

	return nil
}

func (a *recordingAcker) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked++
	if requeue {
		a.requeued++
	}

	return nil
}

func (a *recordingAcker) Reject(uint64, bool) error { return nil }

func TestConsumer_Run(t *testing.T) {
	body, err := json.Marshal(sampleEvent())
	require.NoError(t, err)

	acker := &recordingAcker{}
	ch := &fakeChannel{deliveries: make(chan amqp.Delivery, 4)}
	ch.deliveries <- amqp.Delivery{Acknowledger: acker, Body: body}
	ch.deliveries <- amqp.Delivery{Acknowledger: acker, Body: []byte("garbage")}
	ch.deliveries <- amqp.Delivery{Acknowledger: acker, Body: body, MessageId: "fail"}
	ch.deliveries <- amqp.Delivery{Acknowledger: acker, Body: body, MessageId: "fail", Redelivered: true}
	close(ch.deliveries)

	calls := 0
	consumer := &Consumer{channel: ch, queue: "estate.notifier", logger: discardLogger()}
	err = consumer.Run(context.Background(), func(_ context.Context, event *entity.ListingEvent) error {
		calls++
		if calls > 1 {
			return assert.AnError
		}
		assert.Equal(t, entity.ListingEventSold, event.Type)

		return nil
	})
	require.Error(t, err, "closed delivery channel ends the run")

	assert.Equal(t, 3, calls)
	assert.Equal(t, 1, acker.acked)
	assert.Equal(t, 3, acker.nacked)
	assert.Equal(t, 1, acker.requeued)
}

func TestNewEventPublisher_Noop(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	require.NoError(t, publisher.PublishListingEvent(context.Background(), sampleEvent()))
	require.NoError(t, publisher.Close())
}

func TestNewEventPublisher_UnknownProvider(t *testing.T) {
	_, err := NewEventPublisher(PublisherParams{
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
		Logger: discardLogger(),
	})
	assert.Error(t, err)
}
