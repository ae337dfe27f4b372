package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/errors"
	mockRepo "estate/internal/mocks/repository"
	mockSvc "estate/internal/mocks/service"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var tokenExpiry = time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

type accountFixtures struct {
	service   usecase.AccountUsecase
	userRepo  *mockRepo.MockUserRepository
	adminRepo *mockRepo.MockAdminRepository
	hasher    *mockSvc.MockPasswordHasher
	tokens    *mockSvc.MockTokenService
	oauth     *mockSvc.MockOAuthAuthService
	otpStore  *mockSvc.MockOTPStore
	sms       *mockSvc.MockSMSSender
}

func createTestAccountService(t *testing.T) accountFixtures {
	f := accountFixtures{
		userRepo:  mockRepo.NewMockUserRepository(t),
		adminRepo: mockRepo.NewMockAdminRepository(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		tokens:    mockSvc.NewMockTokenService(t),
		oauth:     mockSvc.NewMockOAuthAuthService(t),
		otpStore:  mockSvc.NewMockOTPStore(t),
		sms:       mockSvc.NewMockSMSSender(t),
	}
	svc := NewAccountService(AccountServiceParams{
		UserRepo:  f.userRepo,
		AdminRepo: f.adminRepo,
		Hasher:    f.hasher,
		Tokens:    f.tokens,
		OAuth:     f.oauth,
		OTPStore:  f.otpStore,
		SMS:       f.sms,
		Config:    testConfig(),
		Logger:    testLogger(),
	})
	svc.(*accountService).generateCode = func(length int) (string, error) {
		return "123456"[:length], nil
	}
	f.service = svc

	return f
}

// expectCreate assigns an id the way the store would.
func (f accountFixtures) expectCreate(match func(*entity.User) bool) {
	f.userRepo.EXPECT().CreateUser(mock.Anything, mock.MatchedBy(match)).
		Run(func(_ context.Context, user *entity.User) { user.ID = uuid.New() }).
		Return(nil)
}

func (f accountFixtures) expectUserToken() {
	f.tokens.EXPECT().GenerateAccessToken(mock.MatchedBy(func(p entity.Principal) bool { return p.IsUser() })).
		Return("signed.jwt", tokenExpiry, nil)
}

func TestAccountService_Register(t *testing.T) {
	f := createTestAccountService(t)

	f.userRepo.EXPECT().FindUserByEmail(mock.Anything, "asha@example.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("correct horse").Return("$2a$hash", nil)
	f.expectCreate(func(u *entity.User) bool {
		return u.Email == "asha@example.com" && u.PasswordHash == "$2a$hash" && u.Name == "Asha"
	})
	f.expectUserToken()

	result, err := f.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     " Asha ",
		Email:    " Asha@Example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", result.Token)
	assert.True(t, result.IsNewUser)
	assert.Equal(t, result.User.ID, result.Principal.ID)
	assert.Equal(t, entity.PrincipalUser, result.Principal.Kind)
}

func TestAccountService_Register_Rejections(t *testing.T) {
	t.Run("short password", func(t *testing.T) {
		f := createTestAccountService(t)

		_, err := f.service.Register(context.Background(), &usecase.RegisterInput{Email: "a@b.co", Password: "short"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("bad email", func(t *testing.T) {
		f := createTestAccountService(t)

		_, err := f.service.Register(context.Background(), &usecase.RegisterInput{Email: "nope", Password: "long enough"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("taken email", func(t *testing.T) {
		f := createTestAccountService(t)
		f.userRepo.EXPECT().FindUserByEmail(mock.Anything, "a@b.co").Return(&entity.User{ID: uuid.New()}, nil)

		_, err := f.service.Register(context.Background(), &usecase.RegisterInput{Email: "a@b.co", Password: "long enough"})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("hash failure", func(t *testing.T) {
		f := createTestAccountService(t)
		f.userRepo.EXPECT().FindUserByEmail(mock.Anything, "a@b.co").Return(nil, repository.ErrUserNotFound)
		f.hasher.EXPECT().Hash("long enough").Return("", errors.New("cost out of range"))

		_, err := f.service.Register(context.Background(), &usecase.RegisterInput{Email: "a@b.co", Password: "long enough"})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	})
}

func TestAccountService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "asha@example.com", PasswordHash: "$2a$hash"}

	t.Run("success", func(t *testing.T) {
		f := createTestAccountService(t)
		f.userRepo.EXPECT().FindUserByEmail(mock.Anything, "asha@example.com").Return(user, nil)
		f.hasher.EXPECT().Check("pw", "$2a$hash").Return(true)
		f.expectUserToken()

		result, err := f.service.Login(context.Background(), "asha@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, entity.NewUserPrincipal(user.ID), result.Principal)
		assert.False(t, result.IsNewUser)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := createTestAccountService(t)
		f.userRepo.EXPECT().FindUserByEmail(mock.Anything, "asha@example.com").Return(user, nil)
		f.hasher.EXPECT().Check("bad", "$2a$hash").Return(false)

		_, err := f.service.Login(context.Background(), "asha@example.com", "bad")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := createTestAccountService(t)
		f.userRepo.EXPECT().FindUserByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := f.service.Login(context.Background(), "ghost@example.com", "pw")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("otp-only account", func(t *testing.T) {
		f := createTestAccountService(t)
		f.userRepo.EXPECT().FindUserByEmail(mock.Anything, "otp@example.com").
			Return(&entity.User{ID: uuid.New(), Email: "otp@example.com"}, nil)

		_, err := f.service.Login(context.Background(), "otp@example.com", "pw")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAccountService_AdminLogin(t *testing.T) {
	f := createTestAccountService(t)
	admin := &entity.Admin{ID: uuid.New(), Email: "ops@estate.example", FullName: "Ops", PasswordHash: "$2a$admin"}

	f.adminRepo.EXPECT().FindAdminByEmail(mock.Anything, "ops@estate.example").Return(admin, nil)
	f.hasher.EXPECT().Check("pw", "$2a$admin").Return(true)
	f.tokens.EXPECT().GenerateAccessToken(entity.NewAdminPrincipal(admin.ID)).Return("admin.jwt", tokenExpiry, nil)

	result, err := f.service.AdminLogin(context.Background(), "OPS@estate.example", "pw")
	require.NoError(t, err)
	assert.True(t, result.Principal.IsAdmin())
	assert.Same(t, admin, result.Admin)
	assert.Nil(t, result.User)
}

func TestAccountService_GoogleSignIn(t *testing.T) {
	t.Run("links existing account", func(t *testing.T) {
		f := createTestAccountService(t)
		existing := &entity.User{ID: uuid.New(), Email: "asha@example.com"}

		f.oauth.EXPECT().VerifyIDToken(mock.Anything, "id-token").
			Return(&service.OAuthUser{ID: "google-sub", Email: "asha@example.com", EmailVerified: true}, nil)
		f.userRepo.EXPECT().FindUserByEmail(mock.Anything, "asha@example.com").Return(existing, nil)
		f.userRepo.EXPECT().SetGoogleID(mock.Anything, existing.ID, "google-sub").Return(nil)
		f.expectUserToken()

		result, err := f.service.GoogleSignIn(context.Background(), "id-token")
		require.NoError(t, err)
		assert.False(t, result.IsNewUser)
		assert.Equal(t, "google-sub", result.User.GoogleID)
	})

	t.Run("creates new user", func(t *testing.T) {
		f := createTestAccountService(t)

		f.oauth.EXPECT().VerifyIDToken(mock.Anything, "id-token").
			Return(&service.OAuthUser{ID: "google-sub", Email: "new@example.com", Name: "New", EmailVerified: true}, nil)
		f.userRepo.EXPECT().FindUserByEmail(mock.Anything, "new@example.com").Return(nil, repository.ErrUserNotFound)
		f.expectCreate(func(u *entity.User) bool { return u.GoogleID == "google-sub" && u.Name == "New" })
		f.expectUserToken()

		result, err := f.service.GoogleSignIn(context.Background(), "id-token")
		require.NoError(t, err)
		assert.True(t, result.IsNewUser)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := createTestAccountService(t)
		f.oauth.EXPECT().VerifyIDToken(mock.Anything, "forged").Return(nil, errors.New("audience mismatch"))

		_, err := f.service.GoogleSignIn(context.Background(), "forged")
		assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
	})

	t.Run("unverified email", func(t *testing.T) {
		f := createTestAccountService(t)
		f.oauth.EXPECT().VerifyIDToken(mock.Anything, "id-token").
			Return(&service.OAuthUser{ID: "sub", Email: "x@example.com"}, nil)

		_, err := f.service.GoogleSignIn(context.Background(), "id-token")
		assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
	})
}

func TestAccountService_RequestOTP(t *testing.T) {
	t.Run("stores and sends", func(t *testing.T) {
		f := createTestAccountService(t)

		f.otpStore.EXPECT().Save(mock.Anything, "+919876543210", "123456", 5*time.Minute).Return(nil)
		f.sms.EXPECT().Send(mock.Anything, "+919876543210", mock.MatchedBy(func(msg string) bool {
			return strings.Contains(msg, "123456")
		})).Return(nil)

		require.NoError(t, f.service.RequestOTP(context.Background(), " +919876543210 "))
	})

	t.Run("gateway down", func(t *testing.T) {
		f := createTestAccountService(t)

		f.otpStore.EXPECT().Save(mock.Anything, "9876543210", "123456", 5*time.Minute).Return(nil)
		f.sms.EXPECT().Send(mock.Anything, "9876543210", mock.Anything).Return(errors.New("502 from gateway"))

		err := f.service.RequestOTP(context.Background(), "9876543210")
		assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
	})

	t.Run("bad phone", func(t *testing.T) {
		f := createTestAccountService(t)

		err := f.service.RequestOTP(context.Background(), "12ab")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAccountService_VerifyOTP(t *testing.T) {
	t.Run("new phone creates user", func(t *testing.T) {
		f := createTestAccountService(t)

		f.otpStore.EXPECT().Consume(mock.Anything, "9876543210", "123456").Return(true, nil)
		f.userRepo.EXPECT().FindUserByPhone(mock.Anything, "9876543210").Return(nil, repository.ErrUserNotFound)
		f.expectCreate(func(u *entity.User) bool { return u.Phone == "9876543210" })
		f.expectUserToken()

		result, err := f.service.VerifyOTP(context.Background(), "9876543210", "123456")
		require.NoError(t, err)
		assert.True(t, result.IsNewUser)
	})

	t.Run("known phone", func(t *testing.T) {
		f := createTestAccountService(t)
		user := &entity.User{ID: uuid.New(), Phone: "9876543210"}

		f.otpStore.EXPECT().Consume(mock.Anything, "9876543210", "123456").Return(true, nil)
		f.userRepo.EXPECT().FindUserByPhone(mock.Anything, "9876543210").Return(user, nil)
		f.expectUserToken()

		result, err := f.service.VerifyOTP(context.Background(), "9876543210", "123456")
		require.NoError(t, err)
		assert.Same(t, user, result.User)
	})

	t.Run("wrong code", func(t *testing.T) {
		f := createTestAccountService(t)
		f.otpStore.EXPECT().Consume(mock.Anything, "9876543210", "000000").Return(false, nil)

		_, err := f.service.VerifyOTP(context.Background(), "9876543210", "000000")
		assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
	})
}

func TestAccountService_UpdateProfile(t *testing.T) {
	f := createTestAccountService(t)
	user := &entity.User{ID: uuid.New(), Name: "Old"}
	name := " Asha "

	f.userRepo.EXPECT().FindUserByID(mock.Anything, user.ID).Return(user, nil)
	f.userRepo.EXPECT().UpdateProfile(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Name == "Asha" && u.Profile.City == "London" && u.Profile.Street == "221B Baker St"
	})).Return(nil)

	got, err := f.service.UpdateProfile(context.Background(), user.ID, &usecase.ProfileUpdate{
		Name:    &name,
		Profile: &entity.ProfileAddress{Street: "221B Baker St ", City: "London"},
	})
	require.NoError(t, err)
	assert.Equal(t, "London", got.Profile.City)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	f := createTestAccountService(t)
	id := uuid.New()
	f.userRepo.EXPECT().FindUserByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.GetProfile(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestRandomDigits(t *testing.T) {
	code, err := randomDigits(6)
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9]{6}$`, code)
}
