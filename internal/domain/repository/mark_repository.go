package repository

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// MarkRepository stores saved and bought relations between users and listings.
type MarkRepository interface {
	// AddMark is idempotent.
	AddMark(ctx context.Context, userID, listingID uuid.UUID, kind entity.MarkKind) error

	// RemoveMark is idempotent.
	RemoveMark(ctx context.Context, userID, listingID uuid.UUID, kind entity.MarkKind) error

	// ListMarkedListingIDs returns listing ids newest mark first.
	ListMarkedListingIDs(ctx context.Context, userID uuid.UUID, kind entity.MarkKind) ([]uuid.UUID, error)

	// ListUsersWithMark returns users who hold the mark on the listing.
	ListUsersWithMark(ctx context.Context, listingID uuid.UUID, kind entity.MarkKind) ([]uuid.UUID, error)

	// DeleteMarksForListing drops all marks on a listing.
	DeleteMarksForListing(ctx context.Context, listingID uuid.UUID) error
}
