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

// reconcileListingCountsQuery rewrites listing_count from the listings table
// for every user whose stored count drifted.
const reconcileListingCountsQuery = `
	UPDATE users u
	SET listing_count = c.cnt, updated_at = now()
	FROM (
	    SELECT u2.id, COUNT(l.id) AS cnt
	    FROM users u2
	    LEFT JOIN listings l ON l.owner_user_id = u2.id
	    GROUP BY u2.id
	) c
	WHERE u.id = c.id AND u.listing_count <> c.cnt
`

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx), "id = ?", id)
}

func (repo *userRepository) FindUserByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), "id = ?", id)
}

func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx), "LOWER(email) = LOWER(?)", email)
}

func (repo *userRepository) FindUserByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return repo.findOne(repo.db.WithContext(ctx), "phone = ?", phone)
}

func (repo *userRepository) findOne(db *gorm.DB, query string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := db.Where(query, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":        user.Name,
			"street":      user.Profile.Street,
			"city":        user.Profile.City,
			"state":       user.Profile.State,
			"postal_code": user.Profile.PostalCode,
		})

	return rowsOrNotFound(result, repository.ErrUserNotFound, "failed to update user profile")
}

func (repo *userRepository) SetGoogleID(ctx context.Context, id uuid.UUID, googleID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("google_id", googleID)

	if result.Error != nil && isUniqueConstraintViolation(result.Error) {
		return repository.ErrUserConflict
	}

	return rowsOrNotFound(result, repository.ErrUserNotFound, "failed to link google account")
}

func (repo *userRepository) AssignSerialNumber(ctx context.Context, id uuid.UUID, serial int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND serial_number IS NULL", id).
		Update("serial_number", serial)

	return rowsOrNotFound(result, repository.ErrUserNotFound, "failed to assign serial number")
}

func (repo *userRepository) IncrementListingCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("listing_count", gorm.Expr("listing_count + 1"))

	return rowsOrNotFound(result, repository.ErrUserNotFound, "failed to increment listing count")
}

// DecrementListingCount subtracts one but floors at zero. A count that has
// already drifted to zero stays there instead of violating the column CHECK
// and failing the delete; reconciliation repairs the drift.
func (repo *userRepository) DecrementListingCount(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("listing_count", gorm.Expr("GREATEST(listing_count - 1, 0)"))

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to decrement listing count")
	}

	return result.RowsAffected > 0, nil
}

func (repo *userRepository) ReconcileListingCounts(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Exec(reconcileListingCountsQuery)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to reconcile listing counts")
	}

	return result.RowsAffected, nil
}

// rowsOrNotFound maps a write result to nil, notFound or a wrapped error.
func rowsOrNotFound(result *gorm.DB, notFound error, msg string) error {
	if result.Error != nil {
		return errors.Wrap(result.Error, msg)
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) FindAdminByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *adminRepository) FindAdminByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	return repo.findOne(ctx, "LOWER(email) = LOWER(?)", email)
}

func (repo *adminRepository) findOne(ctx context.Context, query string, arg any) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	return &entity.Admin{
		ID:           adminM.ID,
		Email:        adminM.Email,
		FullName:     adminM.FullName,
		PasswordHash: adminM.PasswordHash,
		CreatedAt:    adminM.CreatedAt,
		UpdatedAt:    adminM.UpdatedAt,
	}, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        deref(data.Email),
		Phone:        deref(data.Phone),
		PasswordHash: data.PasswordHash,
		GoogleID:     deref(data.GoogleID),
		Profile: entity.ProfileAddress{
			Street:     data.Street,
			City:       data.City,
			State:      data.State,
			PostalCode: data.PostalCode,
		},
		SerialNumber: data.SerialNumber,
		ListingCount: data.ListingCount,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        nullable(data.Email),
		Phone:        nullable(data.Phone),
		PasswordHash: data.PasswordHash,
		GoogleID:     nullable(data.GoogleID),
		Street:       data.Profile.Street,
		City:         data.Profile.City,
		State:        data.Profile.State,
		PostalCode:   data.Profile.PostalCode,
		SerialNumber: data.SerialNumber,
		ListingCount: data.ListingCount,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// nullable stores empty identifiers as NULL so unique indexes ignore them.
func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
