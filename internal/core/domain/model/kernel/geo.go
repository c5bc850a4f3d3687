package kernel

import (
	"fmt"

	"settlement/internal/pkg/errs"
	"settlement/internal/pkg/guard"
)

const (
	// GeoMinLatitude is the minimum valid latitude in degrees.
	GeoMinLatitude float64 = -90
	// GeoMaxLatitude is the maximum valid latitude in degrees.
	GeoMaxLatitude float64 = 90
	// GeoMinLongitude is the minimum valid longitude in degrees.
	GeoMinLongitude float64 = -180
	// GeoMaxLongitude is the maximum valid longitude in degrees.
	GeoMaxLongitude float64 = 180
)

// ErrGeoPositionIsNotConstructed is returned when attempting to use an improperly initialized GeoPosition.
// Positions must be created using the NewGeoPosition constructor to ensure coordinate validity.
var ErrGeoPositionIsNotConstructed = errs.NewValueIsRequiredError(
	"geo position must be created via NewGeoPosition constructor")

// GeoPosition represents a point on the globe with validated coordinates.
// It is an immutable value object carried by location samples from courier
// devices and stored on orders as the last known position.
// The zero value is invalid and will fail validation.
//
// Example:
//
//	pos, err := kernel.NewGeoPosition(52.5200, 13.4050)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Position: %s", pos) // Output: GeoPosition(52.520000,13.405000)
type GeoPosition struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPosition creates a GeoPosition with the specified coordinates.
// Latitude must lie in [GeoMinLatitude..GeoMaxLatitude] and longitude in
// [GeoMinLongitude..GeoMaxLongitude]. Returns an error if either coordinate
// is out of bounds.
func NewGeoPosition(lat, lng float64) (GeoPosition, error) {
	if lat < GeoMinLatitude || lat > GeoMaxLatitude {
		return GeoPosition{}, errs.NewValueIsOutOfRangeError("latitude", lat, GeoMinLatitude, GeoMaxLatitude)
	}
	if lng < GeoMinLongitude || lng > GeoMaxLongitude {
		return GeoPosition{}, errs.NewValueIsOutOfRangeError("longitude", lng, GeoMinLongitude, GeoMaxLongitude)
	}

	return GeoPosition{
		lat:   lat,
		lng:   lng,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Latitude returns the latitude in degrees.
func (p GeoPosition) Latitude() float64 {
	return p.lat
}

// Longitude returns the longitude in degrees.
func (p GeoPosition) Longitude() float64 {
	return p.lng
}

// IsEqual compares two positions for exact coordinate equality.
func (p GeoPosition) IsEqual(other GeoPosition) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// Validate ensures the position was created through NewGeoPosition.
func (p GeoPosition) Validate() error {
	return p.guard.Validate(ErrGeoPositionIsNotConstructed)
}

// String implements fmt.Stringer for logging and debugging.
func (p GeoPosition) String() string {
	return fmt.Sprintf("GeoPosition(%f,%f)", p.lat, p.lng)
}
