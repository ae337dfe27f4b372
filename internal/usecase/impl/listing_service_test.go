package impl

import (
	"bytes"
	"context"
	"testing"
	"time"

	"estate/internal/domain/constants"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/errors"
	mockRepo "estate/internal/mocks/repository"
	mockSvc "estate/internal/mocks/service"
	mockUsecase "estate/internal/mocks/usecase"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

type listingFixtures struct {
	service     usecase.ListingUsecase
	tx          *mockRepo.MockTransactionManager
	repos       txRepos
	listingRepo *mockRepo.MockListingRepository
	userRepo    *mockRepo.MockUserRepository
	assigner    *mockUsecase.MockIdentityAssigner
	geocoder    *mockSvc.MockGeocoder
	publisher   *mockSvc.MockEventPublisher
	cache       *mockSvc.MockQueryCache
	images      *mockSvc.MockImageStore
	qrCodes     *mockSvc.MockQRCodeService
}

func createTestListingService(t *testing.T) listingFixtures {
	f := listingFixtures{
		tx:          mockRepo.NewMockTransactionManager(t),
		repos:       newTxRepos(t),
		listingRepo: mockRepo.NewMockListingRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		assigner:    mockUsecase.NewMockIdentityAssigner(t),
		geocoder:    mockSvc.NewMockGeocoder(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		cache:       mockSvc.NewMockQueryCache(t),
		images:      mockSvc.NewMockImageStore(t),
		qrCodes:     mockSvc.NewMockQRCodeService(t),
	}
	f.tx.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repos.factory)
		}).Maybe()

	svc := NewListingService(ListingServiceParams{
		TxManager:   f.tx,
		ListingRepo: f.listingRepo,
		UserRepo:    f.userRepo,
		Assigner:    f.assigner,
		Geocoder:    f.geocoder,
		Publisher:   f.publisher,
		Cache:       f.cache,
		Images:      f.images,
		QRCodes:     f.qrCodes,
		Config:      testConfig(),
		Logger:      testLogger(),
	})
	svc.(*listingService).now = func() time.Time { return fixedNow }
	f.service = svc

	return f
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func validFlatInput() *usecase.ListingInput {
	return &usecase.ListingInput{
		Address: entity.Address{
			Street:     "14 Park Street",
			Locality:   "Park Street",
			City:       "Kolkata",
			State:      "West Bengal",
			PostalCode: "700016",
		},
		Price:           6500000,
		Description:     "  Two bedroom flat near the metro ",
		Purpose:         entity.PurposeSell,
		PropertyType:    entity.PropertyTypeResidential,
		ResidentialType: entity.ResidentialFlat,
		Residential: entity.ResidentialDetails{
			Bedrooms:    intPtr(2),
			Bathrooms:   intPtr(2),
			Balconies:   intPtr(1),
			FloorNumber: intPtr(3),
			TotalFloors: intPtr(7),
		},
	}
}

func (f listingFixtures) expectFeedInvalidated() {
	f.cache.EXPECT().InvalidatePrefix(mock.Anything, constants.CachePrefixListingFeed).Return(nil)
}

func (f listingFixtures) expectEvent(eventType entity.ListingEventType) {
	f.publisher.EXPECT().PublishListingEvent(mock.Anything, mock.MatchedBy(func(e *entity.ListingEvent) bool {
		return e.Type == eventType && e.OccurredAt.Equal(fixedNow)
	})).Return(nil).Once()
}

func TestListingService_CreateListing_User(t *testing.T) {
	f := createTestListingService(t)
	userID := uuid.New()
	poster := entity.NewUserPrincipal(userID)
	parkStreet := entity.GeoPoint{Latitude: 22.5530, Longitude: 88.3520}

	f.geocoder.EXPECT().Forward(mock.Anything, "14 Park Street, Park Street, Kolkata, West Bengal, 700016", "in").
		Return([]service.GeocodeResult{{Point: parkStreet}}, nil)
	f.assigner.EXPECT().Assign(mock.Anything, f.repos.factory, poster).
		Return(&usecase.Assignment{CustomID: "S42-1", Sequence: 1}, nil)
	f.repos.listingRepo.EXPECT().CreateListing(mock.Anything, mock.MatchedBy(func(l *entity.Listing) bool {
		return l.CustomID == "S42-1" && l.OwnerUserID != nil && *l.OwnerUserID == userID &&
			!l.PostedByAdmin && l.Location == parkStreet && l.Description == "Two bedroom flat near the metro"
	})).Return(nil)
	f.repos.userRepo.EXPECT().IncrementListingCount(mock.Anything, userID).Return(nil)
	f.expectFeedInvalidated()
	f.expectEvent(entity.ListingEventCreated)

	listing, err := f.service.CreateListing(context.Background(), poster, validFlatInput())
	require.NoError(t, err)
	assert.Equal(t, "S42-1", listing.CustomID)
	assert.Equal(t, poster, listing.Owner())
	assert.NotNil(t, listing.Images)
}

func TestListingService_CreateListing_AdminExplicitLocation(t *testing.T) {
	f := createTestListingService(t)
	adminID := uuid.MustParse("0b6c0e9e-1d2f-4a57-9a6b-5c4d3e2f9abc")
	poster := entity.NewAdminPrincipal(adminID)
	input := validFlatInput()
	input.Location = &entity.GeoPoint{Latitude: 22.5, Longitude: 88.3}

	f.assigner.EXPECT().Assign(mock.Anything, f.repos.factory, poster).
		Return(&usecase.Assignment{CustomID: "A-9abc-4", Sequence: 4}, nil)
	f.repos.listingRepo.EXPECT().CreateListing(mock.Anything, mock.MatchedBy(func(l *entity.Listing) bool {
		return l.PostedByAdmin && l.OwnerUserID == nil && l.Location == *input.Location
	})).Return(nil)
	f.expectFeedInvalidated()
	f.expectEvent(entity.ListingEventCreated)

	listing, err := f.service.CreateListing(context.Background(), poster, input)
	require.NoError(t, err)
	assert.Equal(t, "A-9abc-4", listing.CustomID)
	f.repos.userRepo.AssertNotCalled(t, "IncrementListingCount", mock.Anything, mock.Anything)
}

func TestListingService_CreateListing_GeocodeFailureStoresOrigin(t *testing.T) {
	f := createTestListingService(t)
	poster := entity.NewUserPrincipal(uuid.New())

	f.geocoder.EXPECT().Forward(mock.Anything, mock.Anything, "in").Return(nil, service.ErrGeocoderUnavailable)
	f.assigner.EXPECT().Assign(mock.Anything, mock.Anything, poster).Return(&usecase.Assignment{CustomID: "S1-1"}, nil)
	f.repos.listingRepo.EXPECT().CreateListing(mock.Anything, mock.MatchedBy(func(l *entity.Listing) bool {
		return l.Location.IsZero()
	})).Return(nil)
	f.repos.userRepo.EXPECT().IncrementListingCount(mock.Anything, poster.ID).Return(nil)
	f.expectFeedInvalidated()
	f.expectEvent(entity.ListingEventCreated)

	_, err := f.service.CreateListing(context.Background(), poster, validFlatInput())
	require.NoError(t, err)
}

func TestListingService_CreateListing_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.ListingInput)
		field  string
	}{
		{
			name:   "missing locality",
			mutate: func(in *usecase.ListingInput) { in.Address.Locality = " " },
			field:  "address.locality",
		},
		{
			name:   "flat without bedrooms",
			mutate: func(in *usecase.ListingInput) { in.Residential.Bedrooms = nil },
			field:  "residential.bedrooms",
		},
		{
			name: "commercial without type",
			mutate: func(in *usecase.ListingInput) {
				in.PropertyType = entity.PropertyTypeCommercial
			},
			field: "commercialType",
		},
		{
			name:   "rental without notice period",
			mutate: func(in *usecase.ListingInput) { in.Purpose = entity.PurposeRentLease },
			field:  "rental.noticePeriodDays",
		},
		{
			name: "paying guest without sharing type",
			mutate: func(in *usecase.ListingInput) {
				in.Purpose = entity.PurposePayingGuest
				in.Rental = entity.RentalDetails{NoticePeriodDays: intPtr(30), FoodIncluded: boolPtr(true), PGType: "Girls"}
			},
			field: "rental.sharingType",
		},
		{
			name:   "non positive price",
			mutate: func(in *usecase.ListingInput) { in.Price = 0 },
			field:  "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestListingService(t)
			input := validFlatInput()
			tt.mutate(input)

			_, err := f.service.CreateListing(context.Background(), entity.NewUserPrincipal(uuid.New()), input)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tt.field)
			f.tx.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestListingService_CreateListing_PlotNeedsNoRooms(t *testing.T) {
	f := createTestListingService(t)
	poster := entity.NewAdminPrincipal(uuid.New())
	input := validFlatInput()
	input.ResidentialType = entity.ResidentialPlot
	input.Residential = entity.ResidentialDetails{}
	input.Location = &entity.GeoPoint{Latitude: 22.5, Longitude: 88.3}

	f.assigner.EXPECT().Assign(mock.Anything, mock.Anything, poster).Return(&usecase.Assignment{CustomID: "A-0001-1"}, nil)
	f.repos.listingRepo.EXPECT().CreateListing(mock.Anything, mock.Anything).Return(nil)
	f.expectFeedInvalidated()
	f.expectEvent(entity.ListingEventCreated)

	_, err := f.service.CreateListing(context.Background(), poster, input)
	require.NoError(t, err)
}

func TestListingService_CreateListing_Failures(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		f := createTestListingService(t)

		_, err := f.service.CreateListing(context.Background(), entity.Principal{}, validFlatInput())
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("assignment aborts before persisting", func(t *testing.T) {
		f := createTestListingService(t)
		poster := entity.NewUserPrincipal(uuid.New())
		input := validFlatInput()
		input.Location = &entity.GeoPoint{Latitude: 1, Longitude: 1}

		f.assigner.EXPECT().Assign(mock.Anything, mock.Anything, poster).Return(nil, domainerrors.ErrUserNotFound)

		_, err := f.service.CreateListing(context.Background(), poster, input)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
		f.repos.listingRepo.AssertNotCalled(t, "CreateListing", mock.Anything, mock.Anything)
	})

	t.Run("count bump failure fails the create", func(t *testing.T) {
		f := createTestListingService(t)
		poster := entity.NewUserPrincipal(uuid.New())
		input := validFlatInput()
		input.Location = &entity.GeoPoint{Latitude: 1, Longitude: 1}
		dbErr := errors.New("deadlock detected")

		f.assigner.EXPECT().Assign(mock.Anything, mock.Anything, poster).Return(&usecase.Assignment{CustomID: "S3-1"}, nil)
		f.repos.listingRepo.EXPECT().CreateListing(mock.Anything, mock.Anything).Return(nil)
		f.repos.userRepo.EXPECT().IncrementListingCount(mock.Anything, poster.ID).Return(dbErr)

		_, err := f.service.CreateListing(context.Background(), poster, input)
		assert.ErrorIs(t, err, dbErr)
		f.publisher.AssertNotCalled(t, "PublishListingEvent", mock.Anything, mock.Anything)
	})

	t.Run("duplicate custom id", func(t *testing.T) {
		f := createTestListingService(t)
		poster := entity.NewAdminPrincipal(uuid.New())
		input := validFlatInput()
		input.Location = &entity.GeoPoint{Latitude: 1, Longitude: 1}

		f.assigner.EXPECT().Assign(mock.Anything, mock.Anything, poster).Return(&usecase.Assignment{CustomID: "A-0001-1"}, nil)
		f.repos.listingRepo.EXPECT().CreateListing(mock.Anything, mock.Anything).Return(repository.ErrDuplicateCustomID)

		_, err := f.service.CreateListing(context.Background(), poster, input)
		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})
}

func userListing(owner uuid.UUID) *entity.Listing {
	listing := &entity.Listing{
		ID:              uuid.New(),
		CustomID:        "S7-1",
		Address:         validFlatInput().Address,
		Price:           100,
		Purpose:         entity.PurposeSell,
		PropertyType:    entity.PropertyTypeResidential,
		ResidentialType: entity.ResidentialPlot,
	}
	listing.SetOwner(entity.NewUserPrincipal(owner))

	return listing
}

func TestListingService_DeleteListing(t *testing.T) {
	t.Run("owner delete decrements count", func(t *testing.T) {
		f := createTestListingService(t)
		ownerID := uuid.New()
		listing := userListing(ownerID)

		f.repos.listingRepo.EXPECT().FindListingByIDForUpdate(mock.Anything, listing.ID).Return(listing, nil)
		f.repos.markRepo.EXPECT().DeleteMarksForListing(mock.Anything, listing.ID).Return(nil)
		f.repos.listingRepo.EXPECT().DeleteListing(mock.Anything, listing.ID).Return(nil)
		f.repos.userRepo.EXPECT().DecrementListingCount(mock.Anything, ownerID).Return(true, nil).Once()
		f.expectFeedInvalidated()

		require.NoError(t, f.service.DeleteListing(context.Background(), entity.NewUserPrincipal(ownerID), listing.ID))
	})

	t.Run("dangling owner is not an error", func(t *testing.T) {
		f := createTestListingService(t)
		ownerID := uuid.New()
		listing := userListing(ownerID)

		f.repos.listingRepo.EXPECT().FindListingByIDForUpdate(mock.Anything, listing.ID).Return(listing, nil)
		f.repos.markRepo.EXPECT().DeleteMarksForListing(mock.Anything, listing.ID).Return(nil)
		f.repos.listingRepo.EXPECT().DeleteListing(mock.Anything, listing.ID).Return(nil)
		f.repos.userRepo.EXPECT().DecrementListingCount(mock.Anything, ownerID).Return(false, nil)
		f.expectFeedInvalidated()

		require.NoError(t, f.service.DeleteListing(context.Background(), entity.NewAdminPrincipal(uuid.New()), listing.ID))
	})

	t.Run("admin listing has no count", func(t *testing.T) {
		f := createTestListingService(t)
		admin := entity.NewAdminPrincipal(uuid.New())
		listing := userListing(uuid.New())
		listing.SetOwner(admin)

		f.repos.listingRepo.EXPECT().FindListingByIDForUpdate(mock.Anything, listing.ID).Return(listing, nil)
		f.repos.markRepo.EXPECT().DeleteMarksForListing(mock.Anything, listing.ID).Return(nil)
		f.repos.listingRepo.EXPECT().DeleteListing(mock.Anything, listing.ID).Return(nil)
		f.expectFeedInvalidated()

		require.NoError(t, f.service.DeleteListing(context.Background(), admin, listing.ID))
		f.repos.userRepo.AssertNotCalled(t, "DecrementListingCount", mock.Anything, mock.Anything)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		f := createTestListingService(t)
		listing := userListing(uuid.New())

		f.repos.listingRepo.EXPECT().FindListingByIDForUpdate(mock.Anything, listing.ID).Return(listing, nil)

		err := f.service.DeleteListing(context.Background(), entity.NewUserPrincipal(uuid.New()), listing.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		f.repos.listingRepo.AssertNotCalled(t, "DeleteListing", mock.Anything, mock.Anything)
	})

	t.Run("missing listing", func(t *testing.T) {
		f := createTestListingService(t)
		id := uuid.New()

		f.repos.listingRepo.EXPECT().FindListingByIDForUpdate(mock.Anything, id).Return(nil, repository.ErrListingNotFound)

		err := f.service.DeleteListing(context.Background(), entity.NewUserPrincipal(uuid.New()), id)
		assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
	})
}

func TestListingService_UpdateListing(t *testing.T) {
	t.Run("owner changes allowed fields", func(t *testing.T) {
		f := createTestListingService(t)
		ownerID := uuid.New()
		listing := userListing(ownerID)
		price, desc := 250.0, "Corner plot"
		images := []string{"https://cdn.example.com/a.jpg"}

		f.repos.listingRepo.EXPECT().FindListingByIDForUpdate(mock.Anything, listing.ID).Return(listing, nil)
		f.repos.listingRepo.EXPECT().UpdateListing(mock.Anything, mock.MatchedBy(func(l *entity.Listing) bool {
			return l.Price == price && l.Description == desc && len(l.Images) == 1 && l.CustomID == "S7-1"
		})).Return(nil)
		f.expectFeedInvalidated()

		got, err := f.service.UpdateListing(context.Background(), entity.NewUserPrincipal(ownerID), listing.ID, &usecase.ListingUpdate{
			Price:       &price,
			Description: &desc,
			Images:      &images,
		})
		require.NoError(t, err)
		assert.InDelta(t, price, got.Price, 1e-9)
	})

	t.Run("invalid merged listing", func(t *testing.T) {
		f := createTestListingService(t)
		ownerID := uuid.New()
		listing := userListing(ownerID)
		price := -1.0

		f.repos.listingRepo.EXPECT().FindListingByIDForUpdate(mock.Anything, listing.ID).Return(listing, nil)

		_, err := f.service.UpdateListing(context.Background(), entity.NewUserPrincipal(ownerID), listing.ID, &usecase.ListingUpdate{Price: &price})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		f := createTestListingService(t)
		listing := userListing(uuid.New())

		f.repos.listingRepo.EXPECT().FindListingByIDForUpdate(mock.Anything, listing.ID).Return(listing, nil)

		_, err := f.service.UpdateListing(context.Background(), entity.NewUserPrincipal(uuid.New()), listing.ID, &usecase.ListingUpdate{})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestListingService_ToggleSold(t *testing.T) {
	f := createTestListingService(t)
	ownerID := uuid.New()
	listing := userListing(ownerID)
	owner := entity.NewUserPrincipal(ownerID)

	f.repos.listingRepo.EXPECT().FindListingByIDForUpdate(mock.Anything, listing.ID).Return(listing, nil)
	f.repos.listingRepo.EXPECT().UpdateListing(mock.Anything, listing).Return(nil)
	f.expectFeedInvalidated()
	f.expectEvent(entity.ListingEventSold)

	got, err := f.service.ToggleSold(context.Background(), owner, listing.ID)
	require.NoError(t, err)
	assert.True(t, got.IsSold)

	got, err = f.service.ToggleSold(context.Background(), owner, listing.ID)
	require.NoError(t, err)
	assert.False(t, got.IsSold)
}

func TestListingService_RecordVisit(t *testing.T) {
	t.Run("first visit notifies once", func(t *testing.T) {
		f := createTestListingService(t)
		listing := userListing(uuid.New())
		visitor := entity.NewUserPrincipal(uuid.New())

		f.repos.listingRepo.EXPECT().FindListingByIDForUpdate(mock.Anything, listing.ID).Return(listing, nil)
		f.repos.listingRepo.EXPECT().UpdateListing(mock.Anything, listing).Return(nil)
		f.expectEvent(entity.ListingEventVisited)

		_, err := f.service.RecordVisit(context.Background(), visitor, listing.ID)
		require.NoError(t, err)
		got, err := f.service.RecordVisit(context.Background(), visitor, listing.ID)
		require.NoError(t, err)

		assert.Equal(t, 2, got.VisitCount)
		require.Len(t, got.VisitedBy, 1)
		assert.Equal(t, fixedNow, got.VisitedBy[0].VisitedAt)
	})

	t.Run("admin views are not tracked", func(t *testing.T) {
		f := createTestListingService(t)
		listing := userListing(uuid.New())

		f.listingRepo.EXPECT().FindListingByID(mock.Anything, listing.ID).Return(listing, nil)

		got, err := f.service.RecordVisit(context.Background(), entity.NewAdminPrincipal(uuid.New()), listing.ID)
		require.NoError(t, err)
		assert.Zero(t, got.VisitCount)
	})
}

func TestListingService_ListListings_Cache(t *testing.T) {
	filter := entity.ListingFilter{City: "Pune", Limit: 20}

	t.Run("hit", func(t *testing.T) {
		f := createTestListingService(t)
		cached := []*entity.Listing{userListing(uuid.New())}

		f.cache.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).
			Run(func(_ context.Context, _ string, dest any) {
				*dest.(*[]*entity.Listing) = cached
			}).Return(true, nil)

		got, err := f.service.ListListings(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, cached, got)
	})

	t.Run("miss fills the cache", func(t *testing.T) {
		f := createTestListingService(t)
		fresh := []*entity.Listing{userListing(uuid.New())}

		f.cache.EXPECT().Get(mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
		f.listingRepo.EXPECT().FindAll(mock.Anything, filter).Return(fresh, nil)
		f.cache.EXPECT().Set(mock.Anything, mock.MatchedBy(func(key string) bool {
			return len(key) > len(constants.CachePrefixListingFeed) && key[:len(constants.CachePrefixListingFeed)] == constants.CachePrefixListingFeed
		}), fresh, listingFeedTTL).Return(nil)

		got, err := f.service.ListListings(context.Background(), filter)
		require.NoError(t, err)
		assert.Equal(t, fresh, got)
	})
}

func TestListingService_UploadImages(t *testing.T) {
	f := createTestListingService(t)
	ownerID := uuid.New()
	listing := userListing(ownerID)

	f.listingRepo.EXPECT().FindListingByID(mock.Anything, listing.ID).Return(listing, nil)
	f.images.EXPECT().Upload(mock.Anything, mock.MatchedBy(func(name string) bool {
		return len(name) > 5 && name[:5] == "S7-1-" && name[len(name)-4:] == ".jpg"
	}), "image/jpeg", mock.Anything).Return("https://cdn.example.com/listings/x.jpg", nil)
	f.repos.listingRepo.EXPECT().FindListingByIDForUpdate(mock.Anything, listing.ID).Return(listing, nil)
	f.repos.listingRepo.EXPECT().UpdateListing(mock.Anything, listing).Return(nil)
	f.expectFeedInvalidated()

	got, err := f.service.UploadImages(context.Background(), entity.NewUserPrincipal(ownerID), listing.ID, []usecase.ImageUpload{
		{Filename: "Front.JPG", ContentType: "image/jpeg", Body: bytes.NewReader([]byte{0xff, 0xd8})},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/listings/x.jpg"}, got.Images)
}

func TestListingService_UploadImages_UpstreamFailure(t *testing.T) {
	f := createTestListingService(t)
	ownerID := uuid.New()
	listing := userListing(ownerID)

	f.listingRepo.EXPECT().FindListingByID(mock.Anything, listing.ID).Return(listing, nil)
	f.images.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("cloudinary 503"))

	_, err := f.service.UploadImages(context.Background(), entity.NewUserPrincipal(ownerID), listing.ID, []usecase.ImageUpload{
		{Filename: "a.png", ContentType: "image/png", Body: bytes.NewReader(nil)},
	})
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
	f.tx.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestListingService_ShareQRCode(t *testing.T) {
	f := createTestListingService(t)
	listing := userListing(uuid.New())
	png := []byte{0x89, 'P', 'N', 'G'}

	f.listingRepo.EXPECT().FindListingByID(mock.Anything, listing.ID).Return(listing, nil)
	f.qrCodes.EXPECT().Encode("https://estate.example.com/property/" + listing.ID.String()).Return(png, nil)

	got, err := f.service.ShareQRCode(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestListingService_ReconcileListingCounts(t *testing.T) {
	f := createTestListingService(t)

	_, err := f.service.ReconcileListingCounts(context.Background(), entity.NewUserPrincipal(uuid.New()))
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	f.userRepo.EXPECT().ReconcileListingCounts(mock.Anything).Return(int64(3), nil)

	fixed, err := f.service.ReconcileListingCounts(context.Background(), entity.NewAdminPrincipal(uuid.New()))
	require.NoError(t, err)
	assert.Equal(t, int64(3), fixed)
}

func TestListingService_ListSold(t *testing.T) {
	f := createTestListingService(t)
	caller := entity.NewAdminPrincipal(uuid.New())
	sold := []*entity.Listing{userListing(uuid.New())}

	f.listingRepo.EXPECT().FindSoldByOwner(mock.Anything, caller).Return(sold, nil)

	got, err := f.service.ListSold(context.Background(), caller)
	require.NoError(t, err)
	assert.Equal(t, sold, got)
}
