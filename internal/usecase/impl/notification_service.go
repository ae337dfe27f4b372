package impl

import (
	"context"
	"log/slog"

	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/errors"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type notificationService struct {
	markRepo   repository.MarkRepository
	deviceRepo repository.DeviceRepository
	pusher     service.NotificationService
	logger     *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	MarkRepo   repository.MarkRepository
	DeviceRepo repository.DeviceRepository
	Pusher     service.NotificationService
	Logger     *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		markRepo:   params.MarkRepo,
		deviceRepo: params.DeviceRepo,
		pusher:     params.Pusher,
		logger:     params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleListingEvent picks the audience for the event and pushes to their
// active devices. Returned errors are retryable.
func (s *notificationService) HandleListingEvent(ctx context.Context, event *entity.ListingEvent) error {
	logger := s.log(ctx).With(
		slog.String("event_type", string(event.Type)),
		slog.String("listing_id", event.ListingID.String()),
	)

	var (
		audience []uuid.UUID
		msg      entity.PushMessage
	)
	switch event.Type {
	case entity.ListingEventCreated:
		logger.Info("listing created", slog.String("custom_id", event.CustomID))

		return nil
	case entity.ListingEventSold:
		savers, err := s.markRepo.ListUsersWithMark(ctx, event.ListingID, entity.MarkSaved)
		if err != nil {
			return errors.Wrap(err, "failed to load savers")
		}
		audience = without(savers, event.OwnerUserID)
		msg = entity.PushMessage{
			Title: "Property sold",
			Body:  "A property you saved (" + event.CustomID + ") is no longer available.",
		}
	case entity.ListingEventVisited:
		// Admin listings have no owning user to notify.
		if event.OwnerUserID == nil {
			return nil
		}
		audience = []uuid.UUID{*event.OwnerUserID}
		msg = entity.PushMessage{
			Title: "New visitor",
			Body:  "Someone viewed your property " + event.CustomID + ".",
		}
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown event type " + string(event.Type))
	}

	if len(audience) == 0 {
		logger.Debug("no audience for listing event")

		return nil
	}
	msg.Data = map[string]string{
		"type":       string(event.Type),
		"listing_id": event.ListingID.String(),
		"custom_id":  event.CustomID,
	}

	return s.push(ctx, logger, audience, msg)
}

func (s *notificationService) push(ctx context.Context, logger *slog.Logger, audience []uuid.UUID, msg entity.PushMessage) error {
	devices, err := s.deviceRepo.FindActiveDevicesByUsers(ctx, audience)
	if err != nil {
		return errors.Wrap(err, "failed to load devices")
	}

	seen := make(map[string]bool, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken == "" || seen[device.FCMToken] {
			continue
		}
		seen[device.FCMToken] = true
		tokens = append(tokens, device.FCMToken)
	}
	if len(tokens) == 0 {
		return nil
	}

	result, sendErr := s.pusher.SendBatchNotification(ctx, tokens, msg)
	if result != nil {
		logger.Info("push sent",
			slog.Int("success", result.SuccessCount),
			slog.Int("failure", result.FailureCount),
			slog.Int("invalid_tokens", len(result.InvalidTokens)),
		)
		if len(result.InvalidTokens) > 0 {
			if err := s.deviceRepo.DeactivateTokens(ctx, result.InvalidTokens); err != nil {
				logger.Warn("failed to deactivate invalid tokens", slog.Any("error", err))
			}
		}
	}
	if sendErr != nil {
		return errors.Join(domainerrors.ErrUpstreamUnavailable, sendErr)
	}

	return nil
}

func without(ids []uuid.UUID, skip *uuid.UUID) []uuid.UUID {
	if skip == nil {
		return ids
	}

	kept := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id != *skip {
			kept = append(kept, id)
		}
	}

	return kept
}
