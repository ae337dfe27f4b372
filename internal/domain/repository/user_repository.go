package repository

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserConflict is returned when a user with the same email or phone already exists.
	ErrUserConflict = errors.New("user with this email or phone already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error

	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByIDForUpdate locks the user row until the transaction ends.
	FindUserByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	FindUserByPhone(ctx context.Context, phone string) (*entity.User, error)

	// UpdateProfile saves name and profile address.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// SetGoogleID links a Google account to an existing user.
	SetGoogleID(ctx context.Context, id uuid.UUID, googleID string) error

	// AssignSerialNumber sets the serial once; an already assigned serial is left untouched.
	AssignSerialNumber(ctx context.Context, id uuid.UUID, serial int64) error

	// IncrementListingCount adds one to the user's listing count.
	IncrementListingCount(ctx context.Context, id uuid.UUID) error

	// DecrementListingCount subtracts one, never going below zero. It reports
	// false when the user no longer exists.
	DecrementListingCount(ctx context.Context, id uuid.UUID) (bool, error)

	// ReconcileListingCounts recomputes every user's count from the listings
	// table and returns how many users were corrected.
	ReconcileListingCounts(ctx context.Context) (int64, error)
}

// AdminRepository defines lookups for back-office accounts.
type AdminRepository interface {
	FindAdminByID(ctx context.Context, id uuid.UUID) (*entity.Admin, error)

	FindAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
}

// ErrAdminNotFound is returned when an admin is not found.
var ErrAdminNotFound = errors.New("admin not found")
