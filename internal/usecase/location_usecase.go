// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"estate/internal/domain/entity"
)

// ResolveInput carries at most one explicit search center. With neither
// LocationText nor Point set the caller's profile address is used.
type ResolveInput struct {
	Caller       entity.Principal
	Point        *entity.GeoPoint
	LocationText string
}

// AddressResolver turns location input into a concrete search center.
type AddressResolver interface {
	Resolve(ctx context.Context, input ResolveInput) (*entity.ResolvedLocation, error)
}

// NearbyResult is a radius search answer.
type NearbyResult struct {
	Listings     []*entity.NearbyListing  `json:"listings"`
	RadiusKmUsed float64                  `json:"radiusKmUsed"`
	Resolved     *entity.ResolvedLocation `json:"resolvedLocation"`
}

// ListingLocator runs the radius search around a resolved center.
type ListingLocator interface {
	// FindNearby returns listings within radiusKm, nearest first, never
	// including listings posted by the caller. A non-positive radius uses
	// the configured default.
	FindNearby(ctx context.Context, caller entity.Principal, resolved *entity.ResolvedLocation, radiusKm float64) (*NearbyResult, error)
}

// NearbyQuery mirrors the locate-nearby query string.
type NearbyQuery struct {
	Latitude  *float64
	Longitude *float64
	Location  string
	RadiusKm  float64
}

// NearbyUsecase composes resolution and search for the HTTP layer.
type NearbyUsecase interface {
	LocateNearby(ctx context.Context, caller entity.Principal, query NearbyQuery) (*NearbyResult, error)
}
