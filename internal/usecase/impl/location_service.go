package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"estate/config"
	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/errors"
	"estate/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultRadiusKm = 20.0
	metersPerKm     = 1000.0
)

type addressResolver struct {
	geocoder    service.Geocoder
	userRepo    repository.UserRepository
	countryCode string
	fallback    entity.ResolvedLocation
	logger      *slog.Logger
}

// AddressResolverParams holds dependencies for AddressResolver, injected by Fx.
type AddressResolverParams struct {
	fx.In

	Geocoder service.Geocoder
	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

func NewAddressResolver(params AddressResolverParams) usecase.AddressResolver {
	r := &addressResolver{
		geocoder: params.Geocoder,
		userRepo: params.UserRepo,
		fallback: entity.ResolvedLocation{PlaceName: entity.UnknownPlaceName, Source: entity.LocationSourceDefault},
		logger:   params.Logger,
	}
	if geo := params.Config.Geocoding; geo != nil {
		r.countryCode = geo.CountryCode
		r.fallback.Point = entity.GeoPoint{Latitude: geo.DefaultLatitude, Longitude: geo.DefaultLongitude}
		if geo.DefaultPlaceName != "" {
			r.fallback.PlaceName = geo.DefaultPlaceName
		}
	}

	return r
}

func (r *addressResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Resolve prefers free text, then coordinates, then the caller's profile.
func (r *addressResolver) Resolve(ctx context.Context, input usecase.ResolveInput) (*entity.ResolvedLocation, error) {
	if text := strings.TrimSpace(input.LocationText); text != "" {
		return r.resolveSearched(ctx, text)
	}
	if input.Point != nil {
		return r.resolveExplicit(ctx, *input.Point)
	}

	return r.resolveProfile(ctx, input.Caller)
}

// resolveExplicit trusts the coordinates and only looks up a display name.
func (r *addressResolver) resolveExplicit(ctx context.Context, point entity.GeoPoint) (*entity.ResolvedLocation, error) {
	if err := point.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	name, err := r.geocoder.Reverse(ctx, point)
	if err != nil {
		r.log(ctx).Warn("reverse geocoding failed", slog.Any("error", err))
	}
	if err != nil || name == "" {
		name = entity.UnknownPlaceName
	}

	return &entity.ResolvedLocation{Point: point, PlaceName: name, Source: entity.LocationSourceExplicit}, nil
}

// resolveSearched surfaces provider failures and empty answers to the caller.
func (r *addressResolver) resolveSearched(ctx context.Context, text string) (*entity.ResolvedLocation, error) {
	results, err := r.geocoder.Forward(ctx, text, r.countryCode)
	if err != nil {
		r.log(ctx).Error("location search failed", slog.String("query", text), slog.Any("error", err))

		return nil, errors.Join(domainerrors.ErrUpstreamUnavailable, err)
	}
	if len(results) == 0 {
		return nil, domainerrors.ErrPlaceNotFound.WithDetails(text)
	}

	return &entity.ResolvedLocation{
		Point:     results[0].Point,
		PlaceName: results[0].DisplayName,
		Source:    entity.LocationSourceSearched,
	}, nil
}

// resolveProfile never fails on geocoding; it degrades to the configured default.
func (r *addressResolver) resolveProfile(ctx context.Context, caller entity.Principal) (*entity.ResolvedLocation, error) {
	if !caller.IsUser() {
		return r.defaultLocation(), nil
	}

	user, err := r.userRepo.FindUserByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "resolve profile address")
		}

		return nil, errors.Wrap(err, "failed to load user for profile address")
	}

	query := user.Profile.GeocodeQuery()
	if query == "" {
		return r.defaultLocation(), nil
	}

	results, err := r.geocoder.Forward(ctx, query, r.countryCode)
	if err != nil {
		r.log(ctx).Warn("profile geocoding failed, using default location", slog.Any("user_id", user.ID), slog.Any("error", err))

		return r.defaultLocation(), nil
	}
	if len(results) == 0 {
		r.log(ctx).Debug("profile address not found, using default location", slog.Any("user_id", user.ID))

		return r.defaultLocation(), nil
	}

	name := results[0].DisplayName
	if name == "" {
		name = query
	}

	return &entity.ResolvedLocation{Point: results[0].Point, PlaceName: name, Source: entity.LocationSourceProfile}, nil
}

func (r *addressResolver) defaultLocation() *entity.ResolvedLocation {
	loc := r.fallback

	return &loc
}

type listingLocator struct {
	listingRepo     repository.ListingRepository
	defaultRadiusKm float64
	maxRadiusKm     float64
}

func NewListingLocator(listingRepo repository.ListingRepository, cfg *config.Config) usecase.ListingLocator {
	l := &listingLocator{listingRepo: listingRepo, defaultRadiusKm: defaultRadiusKm}
	if cfg.Listing != nil {
		if cfg.Listing.DefaultRadiusKm > 0 {
			l.defaultRadiusKm = cfg.Listing.DefaultRadiusKm
		}
		l.maxRadiusKm = cfg.Listing.MaxRadiusKm
	}

	return l
}

func (l *listingLocator) FindNearby(ctx context.Context, caller entity.Principal, resolved *entity.ResolvedLocation, radiusKm float64) (*usecase.NearbyResult, error) {
	if caller.IsZero() {
		return nil, domainerrors.ErrUnauthorized
	}
	if resolved == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search center is required")
	}

	radius := l.radius(radiusKm)
	listings, err := l.listingRepo.FindNearby(ctx, repository.NearbyQuery{
		Center:       resolved.Point,
		RadiusMeters: radius * metersPerKm,
		Exclude:      caller,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find nearby listings")
	}

	nearby := make([]*entity.NearbyListing, 0, len(listings))
	for _, listing := range listings {
		// The store filters by owner too; this keeps the guarantee local.
		if caller.Owns(listing) {
			continue
		}
		nearby = append(nearby, &entity.NearbyListing{
			Listing:    listing,
			DistanceKm: resolved.Point.DistanceKm(listing.Location),
		})
	}

	return &usecase.NearbyResult{Listings: nearby, RadiusKmUsed: radius, Resolved: resolved}, nil
}

// radius treats absent, non-positive and non-finite requests alike.
func (l *listingLocator) radius(requested float64) float64 {
	if !(requested > 0) || math.IsInf(requested, 1) {
		return l.defaultRadiusKm
	}
	if l.maxRadiusKm > 0 && requested > l.maxRadiusKm {
		return l.maxRadiusKm
	}

	return requested
}

type nearbyService struct {
	resolver usecase.AddressResolver
	locator  usecase.ListingLocator
}

func NewNearbyService(resolver usecase.AddressResolver, locator usecase.ListingLocator) usecase.NearbyUsecase {
	return &nearbyService{resolver: resolver, locator: locator}
}

// LocateNearby checks the caller before any geocoding happens.
func (s *nearbyService) LocateNearby(ctx context.Context, caller entity.Principal, query usecase.NearbyQuery) (*usecase.NearbyResult, error) {
	if caller.IsZero() {
		return nil, domainerrors.ErrUnauthorized
	}

	input := usecase.ResolveInput{Caller: caller, LocationText: query.Location}
	switch {
	case query.Latitude != nil && query.Longitude != nil:
		input.Point = &entity.GeoPoint{Latitude: *query.Latitude, Longitude: *query.Longitude}
	case query.Latitude != nil || query.Longitude != nil:
		return nil, domainerrors.ErrValidationFailed.WithDetails("lat and lng must be given together")
	}

	resolved, err := s.resolver.Resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	return s.locator.FindNearby(ctx, caller, resolved, query.RadiusKm)
}
