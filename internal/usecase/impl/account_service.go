package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"estate/config"
	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/errors"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	minPasswordLength = 8
	fallbackOTPLength = 6
	fallbackOTPTTL    = 5 * time.Minute
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

type accountService struct {
	userRepo     repository.UserRepository
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokens       service.TokenService
	oauth        service.OAuthAuthService
	otpStore     service.OTPStore
	sms          service.SMSSender
	otpTTL       time.Duration
	otpLength    int
	generateCode func(length int) (string, error)
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	AdminRepo repository.AdminRepository
	Hasher    service.PasswordHasher
	Tokens    service.TokenService
	OAuth     service.OAuthAuthService
	OTPStore  service.OTPStore
	SMS       service.SMSSender
	Config    *config.Config
	Logger    *slog.Logger
}

func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		userRepo:     params.UserRepo,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokens:       params.Tokens,
		oauth:        params.OAuth,
		otpStore:     params.OTPStore,
		sms:          params.SMS,
		otpTTL:       fallbackOTPTTL,
		otpLength:    fallbackOTPLength,
		generateCode: randomDigits,
		logger:       params.Logger,
	}
	if auth := params.Config.Auth; auth != nil {
		if auth.OTPTTL > 0 {
			srv.otpTTL = auth.OTPTTL
		}
		if auth.OTPLength > 0 {
			srv.otpLength = auth.OTPLength
		}
	}

	return srv
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	email := normalizeEmail(input.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is invalid")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}
	phone := strings.TrimSpace(input.Phone)
	if phone != "" && !phonePattern.MatchString(phone) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone is invalid")
	}

	_, err := srv.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "register")
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
	}
	if err := srv.createUser(ctx, user); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return srv.userResult(user, true)
}

func (srv *accountService) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	user, err := srv.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load login user")
	}
	if user.PasswordHash == "" || !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("user_id", user.ID.String()))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	return srv.userResult(user, false)
}

func (srv *accountService) AdminLogin(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	admin, err := srv.adminRepo.FindAdminByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
		}

		return nil, errors.Wrap(err, "failed to load admin")
	}
	if !srv.hasher.Check(password, admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login failed", slog.String("admin_id", admin.ID.String()))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
	}

	principal := entity.NewAdminPrincipal(admin.ID)
	token, expiresAt, err := srv.tokens.GenerateAccessToken(principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin token")
	}

	return &usecase.AuthResult{Token: token, ExpiresAt: expiresAt, Principal: principal, Admin: admin}, nil
}

// GoogleSignIn links the Google subject to an existing account with the same
// email, or creates a new one.
func (srv *accountService) GoogleSignIn(ctx context.Context, idToken string) (*usecase.AuthResult, error) {
	oauthUser, err := srv.oauth.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}
	if !oauthUser.EmailVerified {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("email not verified")
	}

	email := normalizeEmail(oauthUser.Email)
	user, err := srv.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		if user.GoogleID == "" {
			if err := srv.userRepo.SetGoogleID(ctx, user.ID, oauthUser.ID); err != nil {
				return nil, errors.Wrap(err, "failed to link Google account")
			}
			user.GoogleID = oauthUser.ID
		}

		return srv.userResult(user, false)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find Google user")
	}

	user = &entity.User{Name: oauthUser.Name, Email: email, GoogleID: oauthUser.ID}
	if err := srv.createUser(ctx, user); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("User created from Google sign-in", slog.String("user_id", user.ID.String()))

	return srv.userResult(user, true)
}

// RequestOTP replaces any pending code for the phone.
func (srv *accountService) RequestOTP(ctx context.Context, phone string) error {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return domainerrors.ErrValidationFailed.WithDetails("phone is invalid")
	}

	code, err := srv.generateCode(srv.otpLength)
	if err != nil {
		return errors.Wrap(err, "failed to generate otp")
	}
	if err := srv.otpStore.Save(ctx, phone, code, srv.otpTTL); err != nil {
		return errors.Wrap(err, "failed to store otp")
	}

	message := "Your estate verification code is " + code + ". It expires in " + srv.otpTTL.String() + "."
	if err := srv.sms.Send(ctx, phone, message); err != nil {
		srv.log(ctx).Error("Failed to send otp", slog.Any("error", err))

		return errors.Join(domainerrors.ErrUpstreamUnavailable, err)
	}

	return nil
}

func (srv *accountService) VerifyOTP(ctx context.Context, phone, code string) (*usecase.AuthResult, error) {
	phone = strings.TrimSpace(phone)

	ok, err := srv.otpStore.Consume(ctx, phone, strings.TrimSpace(code))
	if err != nil {
		return nil, errors.Wrap(err, "failed to check otp")
	}
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrOTPInvalid, "verify otp")
	}

	user, err := srv.userRepo.FindUserByPhone(ctx, phone)
	if err == nil {
		return srv.userResult(user, false)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by phone")
	}

	user = &entity.User{Phone: phone}
	if err := srv.createUser(ctx, user); err != nil {
		return nil, err
	}
	srv.log(ctx).Info("User created from otp sign-in", slog.String("user_id", user.ID.String()))

	return srv.userResult(user, true)
}

func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get profile")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, update *usecase.ProfileUpdate) (*entity.User, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Profile != nil {
		user.Profile = entity.ProfileAddress{
			Street:     strings.TrimSpace(update.Profile.Street),
			City:       strings.TrimSpace(update.Profile.City),
			State:      strings.TrimSpace(update.Profile.State),
			PostalCode: strings.TrimSpace(update.Profile.PostalCode),
		}
	}

	if err := srv.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

func (srv *accountService) createUser(ctx context.Context, user *entity.User) error {
	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserConflict) {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "create user")
		}

		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

func (srv *accountService) userResult(user *entity.User, isNew bool) (*usecase.AuthResult, error) {
	principal := entity.NewUserPrincipal(user.ID)
	token, expiresAt, err := srv.tokens.GenerateAccessToken(principal)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Principal: principal,
		User:      user,
		IsNewUser: isNew,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func randomDigits(length int) (string, error) {
	ten := big.NewInt(10)
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", errors.Wrap(err, "read random digit")
		}
		code[i] = byte('0' + n.Int64())
	}

	return string(code), nil
}
