package impl

import (
	"context"
	"testing"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/errors"
	mockRepo "estate/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txRepos struct {
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	listingRepo *mockRepo.MockListingRepository
	counterRepo *mockRepo.MockCounterRepository
	markRepo    *mockRepo.MockMarkRepository
}

// newTxRepos wires a factory whose repositories are the returned mocks.
func newTxRepos(t *testing.T) txRepos {
	r := txRepos{
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		listingRepo: mockRepo.NewMockListingRepository(t),
		counterRepo: mockRepo.NewMockCounterRepository(t),
		markRepo:    mockRepo.NewMockMarkRepository(t),
	}
	r.factory.EXPECT().NewUserRepository().Return(r.userRepo).Maybe()
	r.factory.EXPECT().NewListingRepository().Return(r.listingRepo).Maybe()
	r.factory.EXPECT().NewCounterRepository().Return(r.counterRepo).Maybe()
	r.factory.EXPECT().NewMarkRepository().Return(r.markRepo).Maybe()

	return r
}

func TestIdentityAssigner_AdminUsesLast4AndCount(t *testing.T) {
	repos := newTxRepos(t)
	adminID := uuid.MustParse("0b6c0e9e-1d2f-4a57-9a6b-5c4d3e2f9abc")

	repos.listingRepo.EXPECT().CountByAdmin(mock.Anything, adminID).Return(int64(3), nil)
	repos.listingRepo.EXPECT().ExistsCustomID(mock.Anything, "A-9abc-4").Return(false, nil)

	got, err := NewIdentityAssigner().Assign(context.Background(), repos.factory, entity.NewAdminPrincipal(adminID))
	require.NoError(t, err)
	assert.Equal(t, "A-9abc-4", got.CustomID)
	assert.Equal(t, int64(4), got.Sequence)
	assert.Nil(t, got.Serial)
}

func TestIdentityAssigner_NewUserGetsSerial(t *testing.T) {
	repos := newTxRepos(t)
	userID := uuid.New()

	repos.userRepo.EXPECT().FindUserByIDForUpdate(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
	repos.counterRepo.EXPECT().Next(mock.Anything, repository.UserSerialCounter).Return(int64(42), nil)
	repos.userRepo.EXPECT().AssignSerialNumber(mock.Anything, userID, int64(42)).Return(nil)
	repos.listingRepo.EXPECT().ExistsCustomID(mock.Anything, "S42-1").Return(false, nil)

	got, err := NewIdentityAssigner().Assign(context.Background(), repos.factory, entity.NewUserPrincipal(userID))
	require.NoError(t, err)
	assert.Equal(t, "S42-1", got.CustomID)
	require.NotNil(t, got.Serial)
	assert.Equal(t, int64(42), *got.Serial)
}

func TestIdentityAssigner_ExistingSerialIsReused(t *testing.T) {
	repos := newTxRepos(t)
	userID := uuid.New()
	serial := int64(42)

	repos.userRepo.EXPECT().FindUserByIDForUpdate(mock.Anything, userID).
		Return(&entity.User{ID: userID, SerialNumber: &serial, ListingCount: 1}, nil)
	repos.listingRepo.EXPECT().ExistsCustomID(mock.Anything, "S42-2").Return(false, nil)

	got, err := NewIdentityAssigner().Assign(context.Background(), repos.factory, entity.NewUserPrincipal(userID))
	require.NoError(t, err)
	assert.Equal(t, "S42-2", got.CustomID)
	repos.counterRepo.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
}

func TestIdentityAssigner_SkipsTakenSuffix(t *testing.T) {
	repos := newTxRepos(t)
	userID := uuid.New()
	serial := int64(5)

	repos.userRepo.EXPECT().FindUserByIDForUpdate(mock.Anything, userID).
		Return(&entity.User{ID: userID, SerialNumber: &serial, ListingCount: 1}, nil)
	repos.listingRepo.EXPECT().ExistsCustomID(mock.Anything, "S5-2").Return(true, nil)
	repos.listingRepo.EXPECT().ExistsCustomID(mock.Anything, "S5-3").Return(false, nil)

	got, err := NewIdentityAssigner().Assign(context.Background(), repos.factory, entity.NewUserPrincipal(userID))
	require.NoError(t, err)
	assert.Equal(t, "S5-3", got.CustomID)
	assert.Equal(t, int64(3), got.Sequence)
}

func TestIdentityAssigner_Failures(t *testing.T) {
	t.Run("user missing", func(t *testing.T) {
		repos := newTxRepos(t)
		userID := uuid.New()
		repos.userRepo.EXPECT().FindUserByIDForUpdate(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

		_, err := NewIdentityAssigner().Assign(context.Background(), repos.factory, entity.NewUserPrincipal(userID))
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("counter unavailable", func(t *testing.T) {
		repos := newTxRepos(t)
		userID := uuid.New()
		counterErr := errors.New("counter table locked")
		repos.userRepo.EXPECT().FindUserByIDForUpdate(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
		repos.counterRepo.EXPECT().Next(mock.Anything, repository.UserSerialCounter).Return(int64(0), counterErr)

		_, err := NewIdentityAssigner().Assign(context.Background(), repos.factory, entity.NewUserPrincipal(userID))
		assert.ErrorIs(t, err, counterErr)
	})

	t.Run("no principal", func(t *testing.T) {
		repos := newTxRepos(t)

		_, err := NewIdentityAssigner().Assign(context.Background(), repos.factory, entity.Principal{})
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
