package postgres

import (
	"context"
	"fmt"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxListingPageSize = 100

// nearbyListingsQuery selects listings whose generated geography column lies
// within the radius, ordered by distance from the center.
const nearbyListingsQuery = `
	SELECT l.*
	FROM listings l
	WHERE ST_DWithin(
	        l.location,
	        ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
	        ?
	      )
	  AND l.%s IS DISTINCT FROM ?
	ORDER BY ST_Distance(l.location, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography) ASC, l.created_at DESC
`

// updatableListingColumns are written by UpdateListing. Identity and
// ownership columns are never rewritten.
var updatableListingColumns = []string{
	"street", "locality", "city", "state", "postal_code", "latitude", "longitude",
	"price", "description", "purpose", "property_type", "residential_type", "commercial_type",
	"bedrooms", "bathrooms", "balconies", "floor_number", "total_floors", "furnishing",
	"notice_period_days", "food_included", "pg_type", "sharing_type",
	"images", "is_sold", "visit_count", "visited_by", "updated_at",
}

type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (repo *listingRepository) CreateListing(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCustomID
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails(pgConstraintName(err))
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

func (repo *listingRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	return repo.findByID(ctx, repo.db.WithContext(ctx), id)
}

func (repo *listingRepository) FindListingByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	return repo.findByID(ctx, repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *listingRepository) findByID(_ context.Context, db *gorm.DB, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := db.Where("id = ?", id).First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

func (repo *listingRepository) ExistsCustomID(ctx context.Context, customID string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("custom_id = ?", customID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check custom id")
	}

	return count > 0, nil
}

func (repo *listingRepository) CountByAdmin(ctx context.Context, adminID uuid.UUID) (int64, error) {
	return repo.countBy(ctx, "owner_admin_id", adminID)
}

func (repo *listingRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return repo.countBy(ctx, "owner_user_id", userID)
}

func (repo *listingRepository) countBy(ctx context.Context, column string, id uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where(column+" = ?", id).
		Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to count listings by %s", column)
	}

	return count, nil
}

func (repo *listingRepository) UpdateListing(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", listing.ID).
		Select(updatableListingColumns).
		Updates(listingM)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails(pgConstraintName(result.Error))
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

func (repo *listingRepository) DeleteListing(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ListingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

func (repo *listingRepository) FindNearby(ctx context.Context, query repository.NearbyQuery) ([]*entity.Listing, error) {
	ownerColumn := "owner_user_id"
	if query.Exclude.Kind == entity.PrincipalAdmin {
		ownerColumn = "owner_admin_id"
	}

	lng, lat := query.Center.Longitude, query.Center.Latitude

	var listingModels []*model.ListingModel
	if err := repo.db.WithContext(ctx).
		Raw(fmt.Sprintf(nearbyListingsQuery, ownerColumn), lng, lat, query.RadiusMeters, query.Exclude.ID, lng, lat).
		Scan(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings within radius")
	}

	return toListingDomains(listingModels), nil
}

func (repo *listingRepository) FindSoldByOwner(ctx context.Context, owner entity.Principal) ([]*entity.Listing, error) {
	ownerColumn := "owner_user_id"
	if owner.Kind == entity.PrincipalAdmin {
		ownerColumn = "owner_admin_id"
	}

	var listingModels []*model.ListingModel
	if err := repo.db.WithContext(ctx).
		Where(ownerColumn+" = ? AND is_sold = ?", owner.ID, true).
		Order("updated_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sold listings")
	}

	return toListingDomains(listingModels), nil
}

func (repo *listingRepository) FindAll(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error) {
	db := repo.db.WithContext(ctx).Model(&model.ListingModel{})

	if !filter.IncludeSold {
		db = db.Where("is_sold = ?", false)
	}
	if filter.Purpose != "" {
		db = db.Where("purpose = ?", string(filter.Purpose))
	}
	if filter.PropertyType != "" {
		db = db.Where("property_type = ?", string(filter.PropertyType))
	}
	if filter.City != "" {
		db = db.Where("LOWER(city) = LOWER(?)", filter.City)
	}

	limit := filter.Limit
	if limit <= 0 || limit > maxListingPageSize {
		limit = maxListingPageSize
	}

	var listingModels []*model.ListingModel
	if err := db.Order("created_at DESC").
		Limit(limit).
		Offset(max(filter.Offset, 0)).
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	return toListingDomains(listingModels), nil
}

func (repo *listingRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Listing, error) {
	if len(ids) == 0 {
		return []*entity.Listing{}, nil
	}

	var listingModels []*model.ListingModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by IDs")
	}

	// Preserve the caller's ordering.
	byID := make(map[uuid.UUID]*entity.Listing, len(listingModels))
	for _, listing := range toListingDomains(listingModels) {
		byID[listing.ID] = listing
	}

	listings := make([]*entity.Listing, 0, len(byID))
	for _, id := range ids {
		if listing, ok := byID[id]; ok {
			listings = append(listings, listing)
		}
	}

	return listings, nil
}

// --- Mapper Functions ---

func toListingDomains(models []*model.ListingModel) []*entity.Listing {
	listings := make([]*entity.Listing, 0, len(models))
	for _, listingM := range models {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings
}

func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	visits := make([]entity.Visit, 0, len(data.VisitedBy))
	for _, v := range data.VisitedBy {
		visits = append(visits, entity.Visit{UserID: v.UserID, VisitedAt: v.VisitedAt})
	}

	images := data.Images
	if images == nil {
		images = []string{}
	}

	return &entity.Listing{
		ID:            data.ID,
		CustomID:      data.CustomID,
		OwnerUserID:   data.OwnerUserID,
		OwnerAdminID:  data.OwnerAdminID,
		PostedByAdmin: data.PostedByAdmin,
		Address: entity.Address{
			Street:     data.Street,
			Locality:   data.Locality,
			City:       data.City,
			State:      data.State,
			PostalCode: data.PostalCode,
		},
		Location:        entity.GeoPoint{Latitude: data.Latitude, Longitude: data.Longitude},
		Price:           data.Price,
		Description:     data.Description,
		Purpose:         entity.Purpose(data.Purpose),
		PropertyType:    entity.PropertyType(data.PropertyType),
		ResidentialType: entity.ResidentialType(data.ResidentialType),
		CommercialType:  entity.CommercialType(data.CommercialType),
		Residential: entity.ResidentialDetails{
			Bedrooms:    data.Bedrooms,
			Bathrooms:   data.Bathrooms,
			Balconies:   data.Balconies,
			FloorNumber: data.FloorNumber,
			TotalFloors: data.TotalFloors,
			Furnishing:  data.Furnishing,
		},
		Rental: entity.RentalDetails{
			NoticePeriodDays: data.NoticePeriodDays,
			FoodIncluded:     data.FoodIncluded,
			PGType:           data.PGType,
			SharingType:      data.SharingType,
		},
		Images:     images,
		IsSold:     data.IsSold,
		VisitCount: data.VisitCount,
		VisitedBy:  visits,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	visits := make([]model.VisitEntryModel, 0, len(data.VisitedBy))
	for _, v := range data.VisitedBy {
		visits = append(visits, model.VisitEntryModel{UserID: v.UserID, VisitedAt: v.VisitedAt})
	}

	images := data.Images
	if images == nil {
		images = []string{}
	}

	return &model.ListingModel{
		ID:               data.ID,
		CustomID:         data.CustomID,
		OwnerUserID:      data.OwnerUserID,
		OwnerAdminID:     data.OwnerAdminID,
		PostedByAdmin:    data.PostedByAdmin,
		Street:           data.Address.Street,
		Locality:         data.Address.Locality,
		City:             data.Address.City,
		State:            data.Address.State,
		PostalCode:       data.Address.PostalCode,
		Latitude:         data.Location.Latitude,
		Longitude:        data.Location.Longitude,
		Price:            data.Price,
		Description:      data.Description,
		Purpose:          string(data.Purpose),
		PropertyType:     string(data.PropertyType),
		ResidentialType:  string(data.ResidentialType),
		CommercialType:   string(data.CommercialType),
		Bedrooms:         data.Residential.Bedrooms,
		Bathrooms:        data.Residential.Bathrooms,
		Balconies:        data.Residential.Balconies,
		FloorNumber:      data.Residential.FloorNumber,
		TotalFloors:      data.Residential.TotalFloors,
		Furnishing:       data.Residential.Furnishing,
		NoticePeriodDays: data.Rental.NoticePeriodDays,
		FoodIncluded:     data.Rental.FoodIncluded,
		PGType:           data.Rental.PGType,
		SharingType:      data.Rental.SharingType,
		Images:           images,
		IsSold:           data.IsSold,
		VisitCount:       data.VisitCount,
		VisitedBy:        visits,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
