package kernel

import (
	"errors"
	"fmt"
	"math"

	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in degrees.
	LatitudeMin float64 = -90
	// LatitudeMax is the northernmost valid latitude in degrees.
	LatitudeMax float64 = 90
	// LongitudeMin is the westernmost valid longitude in degrees.
	LongitudeMin float64 = -180
	// LongitudeMax is the easternmost valid longitude in degrees.
	LongitudeMax float64 = 180

	// earthRadiusKm is the mean Earth radius used for great-circle distances.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate resolved from a place name.
// It is an immutable value object with validated latitude and longitude.
// The zero value is invalid and fails validation - use NewGeoPoint.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(48.86, 2.35)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(point) // Output: GeoPoint(48.860000,2.350000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in degrees.
// Latitude must be within [LatitudeMin..LatitudeMax] and longitude within
// [LongitudeMin..LongitudeMax]; otherwise a validation error is returned.
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created through its constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String returns a human-readable representation of the point.
// Implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lng)
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lng == other.lng, nil
}

// DistanceKm calculates the great-circle distance to another point in
// kilometers using the haversine formula. Both points must be properly
// constructed for the calculation to succeed.
//
// Example:
//
//	washington, _ := kernel.NewGeoPoint(38.89, -77.03)
//	paris, _ := kernel.NewGeoPoint(48.86, 2.35)
//	km, _ := washington.DistanceKm(paris) // km ≈ 6180
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := radians(p.lat)
	lat2 := radians(other.lat)
	dLat := radians(other.lat - p.lat)
	dLng := radians(other.lng - p.lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c, nil
}

// setLat sets the latitude with range validation.
// Pointer receiver is intentional: private setters mutate during construction only.
func (p *GeoPoint) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}

	p.lat = lat
	return nil
}

// setLng sets the longitude with range validation.
// Pointer receiver is intentional: private setters mutate during construction only.
func (p *GeoPoint) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}

	p.lng = lng
	return nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
