package impl

import (
	"context"
	"testing"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/errors"
	mockRepo "estate/internal/mocks/repository"
	mockSvc "estate/internal/mocks/service"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationFixtures struct {
	service    usecase.NotificationUsecase
	markRepo   *mockRepo.MockMarkRepository
	deviceRepo *mockRepo.MockDeviceRepository
	pusher     *mockSvc.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationFixtures {
	f := notificationFixtures{
		markRepo:   mockRepo.NewMockMarkRepository(t),
		deviceRepo: mockRepo.NewMockDeviceRepository(t),
		pusher:     mockSvc.NewMockNotificationService(t),
	}
	f.service = NewNotificationService(NotificationServiceParams{
		MarkRepo:   f.markRepo,
		DeviceRepo: f.deviceRepo,
		Pusher:     f.pusher,
		Logger:     testLogger(),
	})

	return f
}

func TestNotificationService_SoldNotifiesSavers(t *testing.T) {
	f := createTestNotificationService(t)
	owner, saverA, saverB := uuid.New(), uuid.New(), uuid.New()
	event := &entity.ListingEvent{Type: entity.ListingEventSold, ListingID: uuid.New(), CustomID: "S7-1", OwnerUserID: &owner}

	f.markRepo.EXPECT().ListUsersWithMark(mock.Anything, event.ListingID, entity.MarkSaved).
		Return([]uuid.UUID{saverA, owner, saverB}, nil)
	f.deviceRepo.EXPECT().FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{saverA, saverB}).
		Return([]*entity.UserDevice{
			{UserID: saverA, FCMToken: "tok-a"},
			{UserID: saverA, FCMToken: "tok-a"},
			{UserID: saverB, FCMToken: "tok-b"},
		}, nil)
	f.pusher.EXPECT().SendBatchNotification(mock.Anything, []string{"tok-a", "tok-b"}, mock.MatchedBy(func(m entity.PushMessage) bool {
		return m.Data["listing_id"] == event.ListingID.String() && m.Data["type"] == "listing.sold"
	})).Return(&entity.PushResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"tok-b"}}, nil)
	f.deviceRepo.EXPECT().DeactivateTokens(mock.Anything, []string{"tok-b"}).Return(nil)

	require.NoError(t, f.service.HandleListingEvent(context.Background(), event))
}

func TestNotificationService_VisitedNotifiesOwner(t *testing.T) {
	f := createTestNotificationService(t)
	owner := uuid.New()
	event := &entity.ListingEvent{Type: entity.ListingEventVisited, ListingID: uuid.New(), CustomID: "S7-1", OwnerUserID: &owner}

	f.deviceRepo.EXPECT().FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{owner}).
		Return([]*entity.UserDevice{{UserID: owner, FCMToken: "tok-owner"}}, nil)
	f.pusher.EXPECT().SendBatchNotification(mock.Anything, []string{"tok-owner"}, mock.Anything).
		Return(&entity.PushResult{SuccessCount: 1}, nil)

	require.NoError(t, f.service.HandleListingEvent(context.Background(), event))
}

func TestNotificationService_NothingToSend(t *testing.T) {
	t.Run("created is log only", func(t *testing.T) {
		f := createTestNotificationService(t)

		require.NoError(t, f.service.HandleListingEvent(context.Background(), &entity.ListingEvent{Type: entity.ListingEventCreated}))
	})

	t.Run("admin listing visited", func(t *testing.T) {
		f := createTestNotificationService(t)

		require.NoError(t, f.service.HandleListingEvent(context.Background(), &entity.ListingEvent{Type: entity.ListingEventVisited}))
	})

	t.Run("no devices", func(t *testing.T) {
		f := createTestNotificationService(t)
		owner := uuid.New()
		f.deviceRepo.EXPECT().FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{owner}).Return(nil, nil)

		err := f.service.HandleListingEvent(context.Background(), &entity.ListingEvent{Type: entity.ListingEventVisited, OwnerUserID: &owner})
		require.NoError(t, err)
	})
}

func TestNotificationService_SendFailureIsRetryable(t *testing.T) {
	f := createTestNotificationService(t)
	owner := uuid.New()

	f.deviceRepo.EXPECT().FindActiveDevicesByUsers(mock.Anything, mock.Anything).
		Return([]*entity.UserDevice{{FCMToken: "tok"}}, nil)
	f.pusher.EXPECT().SendBatchNotification(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("fcm unavailable"))

	err := f.service.HandleListingEvent(context.Background(), &entity.ListingEvent{Type: entity.ListingEventVisited, OwnerUserID: &owner})
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestNotificationService_UnknownType(t *testing.T) {
	f := createTestNotificationService(t)

	err := f.service.HandleListingEvent(context.Background(), &entity.ListingEvent{Type: "listing.archived"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
