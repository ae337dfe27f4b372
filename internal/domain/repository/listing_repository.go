// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrListingNotFound is returned when a listing is not found.
	ErrListingNotFound = errors.New("listing not found")
	// ErrDuplicateCustomID is returned when a custom id is already taken.
	ErrDuplicateCustomID = errors.New("custom id already exists")
)

// NearbyQuery selects listings within RadiusMeters of Center, skipping the
// listings posted by Exclude.
type NearbyQuery struct {
	Center       entity.GeoPoint
	RadiusMeters float64
	Exclude      entity.Principal
}

// ListingRepository defines the interface for listing persistence.
type ListingRepository interface {
	// CreateListing persists a new listing and fills in ID and timestamps.
	CreateListing(ctx context.Context, listing *entity.Listing) error

	// FindListingByID retrieves a listing by its ID.
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// FindListingByIDForUpdate retrieves a listing and locks its row until the transaction ends.
	FindListingByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// ExistsCustomID reports whether the custom id is already used.
	ExistsCustomID(ctx context.Context, customID string) (bool, error)

	// CountByAdmin counts listings posted by the admin.
	CountByAdmin(ctx context.Context, adminID uuid.UUID) (int64, error)

	// CountByUser counts listings posted by the user.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// UpdateListing saves the mutable columns of a listing.
	UpdateListing(ctx context.Context, listing *entity.Listing) error

	// DeleteListing removes a listing.
	DeleteListing(ctx context.Context, id uuid.UUID) error

	// FindNearby returns listings within the radius ordered by ascending distance.
	FindNearby(ctx context.Context, query NearbyQuery) ([]*entity.Listing, error)

	// FindSoldByOwner lists sold listings posted by the principal.
	FindSoldByOwner(ctx context.Context, owner entity.Principal) ([]*entity.Listing, error)

	// FindAll lists listings matching the filter, newest first.
	FindAll(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error)

	// FindByIDs fetches listings by id, silently skipping missing ones.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Listing, error)
}
