package usecase

import (
	"context"

	"estate/internal/domain/entity"
)

// NotificationUsecase turns listing events into device pushes.
type NotificationUsecase interface {
	HandleListingEvent(ctx context.Context, event *entity.ListingEvent) error
}
