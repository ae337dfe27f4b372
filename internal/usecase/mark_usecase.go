package usecase

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// MarkUsecase manages saved and bought listings for a user.
type MarkUsecase interface {
	Save(ctx context.Context, userID, listingID uuid.UUID) error
	Unsave(ctx context.Context, userID, listingID uuid.UUID) error
	ListSaved(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error)
	MarkBought(ctx context.Context, userID, listingID uuid.UUID) error
	ListBought(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error)
}
