package impl

import (
	"context"
	"log/slog"
	"math"
	"testing"
	"time"

	"estate/config"
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

var (
	connaughtPlace = entity.GeoPoint{Latitude: 28.6315, Longitude: 77.2167}
	gurgaon        = entity.GeoPoint{Latitude: 28.4595, Longitude: 77.0266}
	fallbackPoint  = entity.GeoPoint{Latitude: 28.6139, Longitude: 77.2090}
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Geocoding = &config.GeocodingConfig{
		CountryCode:      "in",
		DefaultLatitude:  fallbackPoint.Latitude,
		DefaultLongitude: fallbackPoint.Longitude,
		DefaultPlaceName: "New Delhi",
	}
	cfg.Listing = &config.ListingConfig{DefaultRadiusKm: 20, ShareBaseURL: "https://estate.example.com"}
	cfg.Auth = &config.AuthConfig{OTPTTL: 5 * time.Minute, OTPLength: 6}

	return cfg
}

type resolverFixtures struct {
	resolver usecase.AddressResolver
	geocoder *mockSvc.MockGeocoder
	userRepo *mockRepo.MockUserRepository
}

func createTestResolver(t *testing.T) resolverFixtures {
	geocoder := mockSvc.NewMockGeocoder(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return resolverFixtures{
		resolver: NewAddressResolver(AddressResolverParams{
			Geocoder: geocoder,
			UserRepo: userRepo,
			Config:   testConfig(),
			Logger:   testLogger(),
		}),
		geocoder: geocoder,
		userRepo: userRepo,
	}
}

func TestAddressResolver_ExplicitPointIsKept(t *testing.T) {
	fx := createTestResolver(t)
	ctx := context.Background()
	point := entity.GeoPoint{Latitude: 12.9716, Longitude: 77.5946}

	fx.geocoder.EXPECT().Reverse(mock.Anything, point).Return("Bengaluru, Karnataka", nil)

	loc, err := fx.resolver.Resolve(ctx, usecase.ResolveInput{Point: &point})
	require.NoError(t, err)
	assert.Equal(t, point, loc.Point)
	assert.Equal(t, "Bengaluru, Karnataka", loc.PlaceName)
	assert.Equal(t, entity.LocationSourceExplicit, loc.Source)
}

func TestAddressResolver_ExplicitPointReverseFailure(t *testing.T) {
	fx := createTestResolver(t)
	point := entity.GeoPoint{Latitude: -33.86, Longitude: 151.2}

	fx.geocoder.EXPECT().Reverse(mock.Anything, point).Return("", service.ErrGeocoderUnavailable)

	loc, err := fx.resolver.Resolve(context.Background(), usecase.ResolveInput{Point: &point})
	require.NoError(t, err)
	assert.Equal(t, point, loc.Point)
	assert.Equal(t, entity.UnknownPlaceName, loc.PlaceName)
}

func TestAddressResolver_ExplicitPointOutOfRange(t *testing.T) {
	fx := createTestResolver(t)
	point := entity.GeoPoint{Latitude: 91, Longitude: 10}

	_, err := fx.resolver.Resolve(context.Background(), usecase.ResolveInput{Point: &point})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressResolver_ExplicitPointNaN(t *testing.T) {
	fx := createTestResolver(t)
	point := entity.GeoPoint{Latitude: math.NaN(), Longitude: math.NaN()}

	_, err := fx.resolver.Resolve(context.Background(), usecase.ResolveInput{Point: &point})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressResolver_SearchTextWinsOverPoint(t *testing.T) {
	fx := createTestResolver(t)
	point := entity.GeoPoint{Latitude: 1, Longitude: 1}

	fx.geocoder.EXPECT().Forward(mock.Anything, "Connaught Place", "in").
		Return([]service.GeocodeResult{{Point: connaughtPlace, DisplayName: "Connaught Place, New Delhi"}}, nil)

	loc, err := fx.resolver.Resolve(context.Background(), usecase.ResolveInput{
		Point:        &point,
		LocationText: "  Connaught Place ",
	})
	require.NoError(t, err)
	assert.Equal(t, connaughtPlace, loc.Point)
	assert.Equal(t, entity.LocationSourceSearched, loc.Source)
}

func TestAddressResolver_SearchFailures(t *testing.T) {
	t.Run("no match", func(t *testing.T) {
		fx := createTestResolver(t)
		fx.geocoder.EXPECT().Forward(mock.Anything, "zzqx", "in").Return(nil, nil)

		_, err := fx.resolver.Resolve(context.Background(), usecase.ResolveInput{LocationText: "zzqx"})
		assert.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
	})

	t.Run("provider down", func(t *testing.T) {
		fx := createTestResolver(t)
		fx.geocoder.EXPECT().Forward(mock.Anything, "Pune", "in").Return(nil, service.ErrGeocoderUnavailable)

		_, err := fx.resolver.Resolve(context.Background(), usecase.ResolveInput{LocationText: "Pune"})
		assert.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
		assert.ErrorIs(t, err, service.ErrGeocoderUnavailable)
	})
}

func TestAddressResolver_ProfileAddress(t *testing.T) {
	fx := createTestResolver(t)
	userID := uuid.New()
	user := &entity.User{ID: userID, Profile: entity.ProfileAddress{City: "Gurgaon", State: "Haryana"}}

	fx.userRepo.EXPECT().FindUserByID(mock.Anything, userID).Return(user, nil)
	fx.geocoder.EXPECT().Forward(mock.Anything, "Gurgaon, Haryana", "in").
		Return([]service.GeocodeResult{{Point: gurgaon, DisplayName: "Gurugram, Haryana"}}, nil)

	loc, err := fx.resolver.Resolve(context.Background(), usecase.ResolveInput{Caller: entity.NewUserPrincipal(userID)})
	require.NoError(t, err)
	assert.Equal(t, gurgaon, loc.Point)
	assert.Equal(t, entity.LocationSourceProfile, loc.Source)
}

func TestAddressResolver_ProfileFallsBackToDefault(t *testing.T) {
	userID := uuid.New()
	caller := entity.NewUserPrincipal(userID)
	want := entity.ResolvedLocation{Point: fallbackPoint, PlaceName: "New Delhi", Source: entity.LocationSourceDefault}

	t.Run("empty address", func(t *testing.T) {
		fx := createTestResolver(t)
		fx.userRepo.EXPECT().FindUserByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)

		loc, err := fx.resolver.Resolve(context.Background(), usecase.ResolveInput{Caller: caller})
		require.NoError(t, err)
		assert.Equal(t, want, *loc)
	})

	t.Run("geocoder error", func(t *testing.T) {
		fx := createTestResolver(t)
		user := &entity.User{ID: userID, Profile: entity.ProfileAddress{City: "Atlantis"}}
		fx.userRepo.EXPECT().FindUserByID(mock.Anything, userID).Return(user, nil)
		fx.geocoder.EXPECT().Forward(mock.Anything, "Atlantis", "in").Return(nil, service.ErrGeocoderUnavailable)

		loc, err := fx.resolver.Resolve(context.Background(), usecase.ResolveInput{Caller: caller})
		require.NoError(t, err)
		assert.Equal(t, want, *loc)
	})

	t.Run("no match", func(t *testing.T) {
		fx := createTestResolver(t)
		user := &entity.User{ID: userID, Profile: entity.ProfileAddress{City: "Atlantis"}}
		fx.userRepo.EXPECT().FindUserByID(mock.Anything, userID).Return(user, nil)
		fx.geocoder.EXPECT().Forward(mock.Anything, "Atlantis", "in").Return([]service.GeocodeResult{}, nil)

		loc, err := fx.resolver.Resolve(context.Background(), usecase.ResolveInput{Caller: caller})
		require.NoError(t, err)
		assert.Equal(t, want, *loc)
	})

	t.Run("admin caller", func(t *testing.T) {
		fx := createTestResolver(t)

		loc, err := fx.resolver.Resolve(context.Background(), usecase.ResolveInput{Caller: entity.NewAdminPrincipal(uuid.New())})
		require.NoError(t, err)
		assert.Equal(t, want, *loc)
	})
}

func TestAddressResolver_ProfileUserMissing(t *testing.T) {
	fx := createTestResolver(t)
	userID := uuid.New()
	fx.userRepo.EXPECT().FindUserByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.resolver.Resolve(context.Background(), usecase.ResolveInput{Caller: entity.NewUserPrincipal(userID)})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func ownedListing(owner entity.Principal, at entity.GeoPoint) *entity.Listing {
	listing := &entity.Listing{ID: uuid.New(), Location: at}
	listing.SetOwner(owner)

	return listing
}

func TestListingLocator_DefaultsRadiusAndExcludesCaller(t *testing.T) {
	listingRepo := mockRepo.NewMockListingRepository(t)
	locator := NewListingLocator(listingRepo, testConfig())
	caller := entity.NewUserPrincipal(uuid.New())
	center := &entity.ResolvedLocation{Point: fallbackPoint, Source: entity.LocationSourceDefault}

	mine := ownedListing(caller, fallbackPoint)
	theirs := ownedListing(entity.NewUserPrincipal(uuid.New()), gurgaon)

	listingRepo.EXPECT().FindNearby(mock.Anything, repository.NearbyQuery{
		Center:       fallbackPoint,
		RadiusMeters: 20000,
		Exclude:      caller,
	}).Return([]*entity.Listing{mine, theirs}, nil)

	result, err := locator.FindNearby(context.Background(), caller, center, 0)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, result.RadiusKmUsed, 1e-9)
	require.Len(t, result.Listings, 1)
	assert.Equal(t, theirs.ID, result.Listings[0].ID)
	assert.InDelta(t, fallbackPoint.DistanceKm(gurgaon), result.Listings[0].DistanceKm, 1e-9)
	assert.Same(t, center, result.Resolved)
}

func TestListingLocator_CapsRadius(t *testing.T) {
	listingRepo := mockRepo.NewMockListingRepository(t)
	cfg := testConfig()
	cfg.Listing.MaxRadiusKm = 50
	locator := NewListingLocator(listingRepo, cfg)
	caller := entity.NewAdminPrincipal(uuid.New())

	listingRepo.EXPECT().FindNearby(mock.Anything, mock.MatchedBy(func(q repository.NearbyQuery) bool {
		return q.RadiusMeters == 50000 && q.Exclude == caller
	})).Return(nil, nil)

	result, err := locator.FindNearby(context.Background(), caller, &entity.ResolvedLocation{Point: gurgaon}, 500)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, result.RadiusKmUsed, 1e-9)
	assert.Empty(t, result.Listings)
}

func TestListingLocator_RadiusNormalization(t *testing.T) {
	tests := []struct {
		name        string
		maxRadiusKm float64
		requested   float64
		want        float64
	}{
		{name: "absent", requested: 0, want: 20},
		{name: "negative", requested: -5, want: 20},
		{name: "NaN", requested: math.NaN(), want: 20},
		{name: "positive infinity", requested: math.Inf(1), want: 20},
		{name: "negative infinity", requested: math.Inf(-1), want: 20},
		{name: "positive infinity with cap", maxRadiusKm: 50, requested: math.Inf(1), want: 20},
		{name: "within cap", maxRadiusKm: 50, requested: 7.5, want: 7.5},
		{name: "above cap", maxRadiusKm: 50, requested: 80, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listingRepo := mockRepo.NewMockListingRepository(t)
			cfg := testConfig()
			cfg.Listing.MaxRadiusKm = tt.maxRadiusKm
			locator := NewListingLocator(listingRepo, cfg)
			caller := entity.NewUserPrincipal(uuid.New())

			listingRepo.EXPECT().FindNearby(mock.Anything, mock.MatchedBy(func(q repository.NearbyQuery) bool {
				return q.RadiusMeters == tt.want*metersPerKm
			})).Return(nil, nil)

			result, err := locator.FindNearby(context.Background(), caller, &entity.ResolvedLocation{Point: gurgaon}, tt.requested)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, result.RadiusKmUsed, 1e-9)
		})
	}
}

func TestListingLocator_RequiresCaller(t *testing.T) {
	locator := NewListingLocator(mockRepo.NewMockListingRepository(t), testConfig())

	_, err := locator.FindNearby(context.Background(), entity.Principal{}, &entity.ResolvedLocation{}, 5)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestListingLocator_StoreError(t *testing.T) {
	listingRepo := mockRepo.NewMockListingRepository(t)
	locator := NewListingLocator(listingRepo, testConfig())
	dbErr := errors.New("connection reset")

	listingRepo.EXPECT().FindNearby(mock.Anything, mock.Anything).Return(nil, dbErr)

	_, err := locator.FindNearby(context.Background(), entity.NewUserPrincipal(uuid.New()), &entity.ResolvedLocation{}, 5)
	assert.ErrorIs(t, err, dbErr)
}

func TestNearbyService_LocateNearby(t *testing.T) {
	lat, lng := 28.5, 77.1
	caller := entity.NewUserPrincipal(uuid.New())

	t.Run("coordinates pass through", func(t *testing.T) {
		resolver := mockUsecase.NewMockAddressResolver(t)
		locator := mockUsecase.NewMockListingLocator(t)
		svc := NewNearbyService(resolver, locator)
		resolved := &entity.ResolvedLocation{Point: entity.GeoPoint{Latitude: lat, Longitude: lng}, Source: entity.LocationSourceExplicit}
		want := &usecase.NearbyResult{RadiusKmUsed: 7, Resolved: resolved}

		resolver.EXPECT().Resolve(mock.Anything, usecase.ResolveInput{
			Caller: caller,
			Point:  &entity.GeoPoint{Latitude: lat, Longitude: lng},
		}).Return(resolved, nil)
		locator.EXPECT().FindNearby(mock.Anything, caller, resolved, 7.0).Return(want, nil)

		got, err := svc.LocateNearby(context.Background(), caller, usecase.NearbyQuery{Latitude: &lat, Longitude: &lng, RadiusKm: 7})
		require.NoError(t, err)
		assert.Same(t, want, got)
	})

	t.Run("half a coordinate", func(t *testing.T) {
		svc := NewNearbyService(mockUsecase.NewMockAddressResolver(t), mockUsecase.NewMockListingLocator(t))

		_, err := svc.LocateNearby(context.Background(), caller, usecase.NearbyQuery{Latitude: &lat})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("anonymous caller never geocodes", func(t *testing.T) {
		svc := NewNearbyService(mockUsecase.NewMockAddressResolver(t), mockUsecase.NewMockListingLocator(t))

		_, err := svc.LocateNearby(context.Background(), entity.Principal{}, usecase.NearbyQuery{Location: "Delhi"})
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("resolver error is returned as is", func(t *testing.T) {
		resolver := mockUsecase.NewMockAddressResolver(t)
		svc := NewNearbyService(resolver, mockUsecase.NewMockListingLocator(t))
		resolver.EXPECT().Resolve(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrPlaceNotFound)

		_, err := svc.LocateNearby(context.Background(), caller, usecase.NearbyQuery{Location: "nowhere"})
		assert.ErrorIs(t, err, domainerrors.ErrPlaceNotFound)
	})
}
