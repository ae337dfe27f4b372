package service

import (
	"context"

	"estate/internal/domain/entity"
)

// EventPublisher defines the interface for publishing listing events to a message queue
type EventPublisher interface {
	// PublishListingEvent publishes an event for async processing by the notifier
	PublishListingEvent(ctx context.Context, event *entity.ListingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
