package impl

import (
	"context"

	"estate/internal/domain/entity"
	"estate/internal/domain/repository"
	"estate/internal/errors"
	"estate/internal/usecase"

	"github.com/google/uuid"
)

type markService struct {
	markRepo    repository.MarkRepository
	listingRepo repository.ListingRepository
}

func NewMarkService(markRepo repository.MarkRepository, listingRepo repository.ListingRepository) usecase.MarkUsecase {
	return &markService{markRepo: markRepo, listingRepo: listingRepo}
}

func (s *markService) Save(ctx context.Context, userID, listingID uuid.UUID) error {
	return s.mark(ctx, userID, listingID, entity.MarkSaved)
}

func (s *markService) Unsave(ctx context.Context, userID, listingID uuid.UUID) error {
	return errors.Wrap(s.markRepo.RemoveMark(ctx, userID, listingID, entity.MarkSaved), "failed to unsave listing")
}

func (s *markService) ListSaved(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error) {
	return s.list(ctx, userID, entity.MarkSaved)
}

func (s *markService) MarkBought(ctx context.Context, userID, listingID uuid.UUID) error {
	return s.mark(ctx, userID, listingID, entity.MarkBought)
}

func (s *markService) ListBought(ctx context.Context, userID uuid.UUID) ([]*entity.Listing, error) {
	return s.list(ctx, userID, entity.MarkBought)
}

// mark refuses to point at a listing that does not exist.
func (s *markService) mark(ctx context.Context, userID, listingID uuid.UUID, kind entity.MarkKind) error {
	if _, err := s.listingRepo.FindListingByID(ctx, listingID); err != nil {
		return mapListingErr(err)
	}

	return errors.Wrapf(s.markRepo.AddMark(ctx, userID, listingID, kind), "failed to add %s mark", kind)
}

// list keeps the mark order; listings deleted since marking are skipped.
func (s *markService) list(ctx context.Context, userID uuid.UUID, kind entity.MarkKind) ([]*entity.Listing, error) {
	ids, err := s.markRepo.ListMarkedListingIDs(ctx, userID, kind)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s marks", kind)
	}
	if len(ids) == 0 {
		return []*entity.Listing{}, nil
	}

	found, err := s.listingRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s listings", kind)
	}

	byID := make(map[uuid.UUID]*entity.Listing, len(found))
	for _, listing := range found {
		byID[listing.ID] = listing
	}

	ordered := make([]*entity.Listing, 0, len(found))
	for _, id := range ids {
		if listing, ok := byID[id]; ok {
			ordered = append(ordered, listing)
		}
	}

	return ordered, nil
}
