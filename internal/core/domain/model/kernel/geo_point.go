package kernel

import (
	"fmt"

	"consolidation/internal/pkg/errs"
	"consolidation/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position with validated coordinates and an
// optional street address. GeoPoint is an immutable value object; its zero
// value is invalid and fails validation.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(52.52, 13.405, "Berlin")
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type GeoPoint struct {
	latitude  float64
	longitude float64
	address   string
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given coordinates. Latitude must be
// within [-90, 90] and longitude within [-180, 180]; the address is free-form
// and may be empty.
func NewGeoPoint(latitude, longitude float64, address string) (GeoPoint, error) {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		address:   address,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Address returns the free-form street address, which may be empty.
func (p GeoPoint) Address() string {
	return p.address
}

// IsEqual reports whether two points have identical coordinates and address.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude &&
		p.longitude == other.longitude &&
		p.address == other.address
}

// String implements fmt.Stringer for logging and debugging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.latitude, p.longitude)
}

// Validate checks that the GeoPoint was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}
