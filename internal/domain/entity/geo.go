// Package entity contains the core business objects of the project.
package entity

import (
	"math"

	"estate/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// LocationSource records which resolution path produced a ResolvedLocation.
type LocationSource string

const (
	LocationSourceExplicit LocationSource = "EXPLICIT" // caller supplied coordinates
	LocationSourceSearched LocationSource = "SEARCHED" // forward-geocoded free text
	LocationSourceProfile  LocationSource = "PROFILE"  // forward-geocoded profile address
	LocationSourceDefault  LocationSource = "DEFAULT"  // configured fallback coordinate
)

// UnknownPlaceName is reported when reverse geocoding yields nothing.
const UnknownPlaceName = "Unknown location"

var (
	ErrLatitudeOutOfRange  = errors.New("latitude must be within [-90, 90]")
	ErrLongitudeOutOfRange = errors.New("longitude must be within [-180, 180]")
)

// GeoPoint is a WGS84 coordinate in degrees.
type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Validate checks that both components are finite and inside their valid
// ranges. NaN compares false against every bound, so it is rejected explicitly.
func (p GeoPoint) Validate() error {
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return ErrLatitudeOutOfRange
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return ErrLongitudeOutOfRange
	}

	return nil
}

// IsZero reports the (0,0) sentinel stored for listings whose address could not be geocoded.
func (p GeoPoint) IsZero() bool {
	return p.Latitude == 0 && p.Longitude == 0
}

// Orb returns the point in orb's lon/lat order.
func (p GeoPoint) Orb() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// DistanceKm is the great-circle distance between two points.
func (p GeoPoint) DistanceKm(other GeoPoint) float64 {
	return geo.DistanceHaversine(p.Orb(), other.Orb()) / 1000
}

// ResolvedLocation is a search center plus a human readable label.
type ResolvedLocation struct {
	Point     GeoPoint       `json:"point"`
	PlaceName string         `json:"placeName"`
	Source    LocationSource `json:"source"`
}
