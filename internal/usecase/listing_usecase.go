package usecase

import (
	"context"
	"io"

	"estate/internal/domain/entity"
	"estate/internal/domain/repository"

	"github.com/google/uuid"
)

// Assignment is the identity handed to a new listing.
type Assignment struct {
	CustomID string
	Sequence int64  // Suffix after the last dash.
	Serial   *int64 // User posters only.
}

// IdentityAssigner computes customId inside the creation transaction.
type IdentityAssigner interface {
	Assign(ctx context.Context, repos repository.RepositoryFactory, poster entity.Principal) (*Assignment, error)
}

// ListingInput is a new property submission.
type ListingInput struct {
	Address         entity.Address
	Location        *entity.GeoPoint // Optional; geocoded from Address when nil.
	Price           float64
	Description     string
	Purpose         entity.Purpose
	PropertyType    entity.PropertyType
	ResidentialType entity.ResidentialType
	CommercialType  entity.CommercialType
	Residential     entity.ResidentialDetails
	Rental          entity.RentalDetails
	Images          []string
}

// ListingUpdate holds the fields an owner may change. Nil leaves a field as is.
type ListingUpdate struct {
	Price       *float64
	Description *string
	Residential *entity.ResidentialDetails
	Rental      *entity.RentalDetails
	Images      *[]string
}

// ImageUpload is one photo attached to a listing.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// ListingUsecase defines property lifecycle operations.
type ListingUsecase interface {
	CreateListing(ctx context.Context, poster entity.Principal, input *ListingInput) (*entity.Listing, error)
	GetListing(ctx context.Context, id uuid.UUID) (*entity.Listing, error)
	ListListings(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error)
	UpdateListing(ctx context.Context, caller entity.Principal, id uuid.UUID, update *ListingUpdate) (*entity.Listing, error)
	DeleteListing(ctx context.Context, caller entity.Principal, id uuid.UUID) error
	ToggleSold(ctx context.Context, caller entity.Principal, id uuid.UUID) (*entity.Listing, error)
	ListSold(ctx context.Context, caller entity.Principal) ([]*entity.Listing, error)
	RecordVisit(ctx context.Context, visitor entity.Principal, id uuid.UUID) (*entity.Listing, error)
	UploadImages(ctx context.Context, caller entity.Principal, id uuid.UUID, files []ImageUpload) (*entity.Listing, error)
	ShareQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)

	// ReconcileListingCounts recomputes user listing counts. Admin only.
	ReconcileListingCounts(ctx context.Context, caller entity.Principal) (int64, error)
}
