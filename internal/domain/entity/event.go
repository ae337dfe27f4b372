package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingEventType names a listing lifecycle event.
type ListingEventType string

const (
	ListingEventCreated ListingEventType = "listing.created"
	ListingEventSold    ListingEventType = "listing.sold"
	ListingEventVisited ListingEventType = "listing.visited"
)

// ListingEvent is published by the API and consumed by the notifier worker.
type ListingEvent struct {
	Type        ListingEventType `json:"type"`
	ListingID   uuid.UUID        `json:"listingId"`
	CustomID    string           `json:"customId"`
	OwnerUserID *uuid.UUID       `json:"ownerUserId,omitempty"`
	ActorID     uuid.UUID        `json:"actorId"`
	RequestID   string           `json:"requestId,omitempty"`
	OccurredAt  time.Time        `json:"occurredAt"`
}

// PushMessage is the payload delivered to devices.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushResult summarizes a batch send.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}
