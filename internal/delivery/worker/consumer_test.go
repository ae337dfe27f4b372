package worker

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"estate/config"
	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	"estate/internal/errors"
	"estate/internal/infra/pubsub"
	mockUsecase "estate/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// fakeSource feeds a fixed set of events and then blocks until cancelled.
type fakeSource struct {
	events  []*entity.ListingEvent
	results []error
	closed  bool
}

func (f *fakeSource) Run(ctx context.Context, handle pubsub.EventHandler) error {
	for _, event := range f.events {
		f.results = append(f.results, handle(ctx, event))
	}
	<-ctx.Done()

	return nil
}

func (f *fakeSource) Close() error {
	f.closed = true

	return nil
}

func newQueueConsumerForTest(source eventSource, notifications *mockUsecase.MockNotificationUsecase) *queueConsumer {
	return &queueConsumer{
		source:        source,
		notifications: notifications,
		logger:        slog.New(slog.DiscardHandler),
		stopping:      make(chan struct{}),
		done:          make(chan struct{}),
	}
}

func TestQueueConsumer_DispatchesUntilStopped(t *testing.T) {
	notifications := mockUsecase.NewMockNotificationUsecase(t)
	event := &entity.ListingEvent{Type: entity.ListingEventVisited, ListingID: uuid.New(), RequestID: "req-7"}
	source := &fakeSource{events: []*entity.ListingEvent{event}}
	handled := make(chan struct{})

	notifications.EXPECT().
		HandleListingEvent(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-7" &&
				deliverycontext.GetLogger(ctx) != nil
		}), event).
		Run(func(context.Context, *entity.ListingEvent) { close(handled) }).
		Return(errors.New("no devices"))

	qc := newQueueConsumerForTest(source, notifications)
	served := make(chan error, 1)
	go func() { served <- qc.Serve(context.Background()) }()

	select {
	case <-handled:
	case <-time.After(time.Second):
		t.Fatal("event was not handled")
	}
	require.NoError(t, qc.stop(context.Background()))

	require.NoError(t, <-served)
	assert.True(t, source.closed)
	require.Len(t, source.results, 1)
	assert.EqualError(t, source.results[0], "no devices")
}

func TestNewQueueConsumer_DisabledForOtherProviders(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}

	d, err := NewQueueConsumer(QueueConsumerParams{
		Lc:            lc,
		Cfg:           cfg,
		Logger:        slog.New(slog.DiscardHandler),
		Notifications: mockUsecase.NewMockNotificationUsecase(t),
	})
	require.NoError(t, err)

	assert.NoError(t, d.Serve(context.Background()))
}
