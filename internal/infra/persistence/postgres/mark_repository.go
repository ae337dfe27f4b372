package postgres

import (
	"context"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type markRepository struct {
	db *gorm.DB
}

// NewMarkRepository is the constructor for markRepository.
func NewMarkRepository(db *gorm.DB) repository.MarkRepository {
	return &markRepository{db: db}
}

func (repo *markRepository) AddMark(ctx context.Context, userID, listingID uuid.UUID, kind entity.MarkKind) error {
	markM := &model.ListingMarkModel{UserID: userID, ListingID: listingID, Kind: string(kind)}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(markM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrListingNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add listing mark")
	}

	return nil
}

func (repo *markRepository) RemoveMark(ctx context.Context, userID, listingID uuid.UUID, kind entity.MarkKind) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ? AND kind = ?", userID, listingID, string(kind)).
		Delete(&model.ListingMarkModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove listing mark")
	}

	return nil
}

func (repo *markRepository) ListMarkedListingIDs(ctx context.Context, userID uuid.UUID, kind entity.MarkKind) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.ListingMarkModel{}).
		Where("user_id = ? AND kind = ?", userID, string(kind)).
		Order("created_at DESC").
		Pluck("listing_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list marked listings")
	}

	return ids, nil
}

func (repo *markRepository) ListUsersWithMark(ctx context.Context, listingID uuid.UUID, kind entity.MarkKind) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.ListingMarkModel{}).
		Where("listing_id = ? AND kind = ?", listingID, string(kind)).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users with mark")
	}

	return ids, nil
}

func (repo *markRepository) DeleteMarksForListing(ctx context.Context, listingID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Delete(&model.ListingMarkModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete listing marks")
	}

	return nil
}
