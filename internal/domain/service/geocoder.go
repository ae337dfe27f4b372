package service

import (
	"context"

	"estate/internal/domain/entity"
	"estate/internal/errors"
)

// ErrGeocoderUnavailable marks transport failures and non-2xx provider replies.
var ErrGeocoderUnavailable = errors.New("geocoding provider unavailable")

// GeocodeResult is one ranked forward geocoding match.
type GeocodeResult struct {
	Point       entity.GeoPoint
	DisplayName string
}

// Geocoder turns text into coordinates and back.
type Geocoder interface {
	// Forward returns matches best first, optionally scoped to an ISO country
	// code. Zero matches is an empty slice and a nil error.
	Forward(ctx context.Context, query, countryCode string) ([]GeocodeResult, error)

	// Reverse returns a human readable name for the point, or "" when the
	// provider knows nothing about it.
	Reverse(ctx context.Context, point entity.GeoPoint) (string, error)
}
