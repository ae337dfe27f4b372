package usecase

import (
	"context"
	"time"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput defines the data required to register with a password.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// AuthResult is returned by every sign-in path.
type AuthResult struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Principal entity.Principal `json:"principal"`
	User      *entity.User     `json:"user,omitempty"`
	Admin     *entity.Admin    `json:"admin,omitempty"`
	IsNewUser bool             `json:"isNewUser"`
}

// ProfileUpdate changes the display name and home address.
type ProfileUpdate struct {
	Name    *string
	Profile *entity.ProfileAddress
}

// AccountUsecase covers sign-up, the sign-in flows and the user profile.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	AdminLogin(ctx context.Context, email, password string) (*AuthResult, error)

	// GoogleSignIn finds or creates the user behind a Google ID token.
	GoogleSignIn(ctx context.Context, idToken string) (*AuthResult, error)

	// RequestOTP stores a fresh code and texts it to the phone.
	RequestOTP(ctx context.Context, phone string) error

	// VerifyOTP consumes the code and finds or creates the user by phone.
	VerifyOTP(ctx context.Context, phone, code string) (*AuthResult, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update *ProfileUpdate) (*entity.User, error)
}
