// Package distance holds the memoized country-to-country distance record.
// The record is a cache over the geocoding round trip, never authoritative:
// writes are last-write-wins and readers fall back to geocoding on a miss.
package distance

import (
	"errors"
	"fmt"

	"swiftdrop/internal/pkg/errs"
)

// ErrCountryDistanceIsNotConstructed is returned when a CountryDistance
// instance was not created through the NewCountryDistance factory method.
var ErrCountryDistanceIsNotConstructed = errors.New(
	"CountryDistance must be created via NewCountryDistance constructor")

// CountryDistance memoizes the computed distance between a pickup and a
// delivery country. The ordered country pair is the natural key; upserting an
// existing pair overwrites the stored distance.
type CountryDistance struct {
	pickupCountry   string
	deliveryCountry string
	distanceKm      float64

	isConstructed bool
}

// NewCountryDistance creates a distance record for an ordered country pair.
func NewCountryDistance(pickupCountry, deliveryCountry string, distanceKm float64) (*CountryDistance, error) {
	d := &CountryDistance{isConstructed: true}

	if err := errors.Join(
		d.setCountries(pickupCountry, deliveryCountry),
		d.setDistance(distanceKm),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreCountryDistance reconstructs a distance record from persistence.
func RestoreCountryDistance(pickupCountry, deliveryCountry string, distanceKm float64) (*CountryDistance, error) {
	return NewCountryDistance(pickupCountry, deliveryCountry, distanceKm)
}

// Validate ensures the CountryDistance was properly constructed through
// NewCountryDistance.
func (d *CountryDistance) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrCountryDistanceIsNotConstructed
	}

	return nil
}

// PickupCountry returns the origin side of the pair.
func (d *CountryDistance) PickupCountry() string {
	return d.pickupCountry
}

// DeliveryCountry returns the destination side of the pair.
func (d *CountryDistance) DeliveryCountry() string {
	return d.deliveryCountry
}

// DistanceKm returns the memoized distance in kilometers.
func (d *CountryDistance) DistanceKm() float64 {
	return d.distanceKm
}

func (d *CountryDistance) setCountries(pickup, delivery string) error {
	if pickup == "" {
		return errs.NewValueIsRequiredError("pickupCountry")
	}
	if delivery == "" {
		return errs.NewValueIsRequiredError("deliveryCountry")
	}

	d.pickupCountry = pickup
	d.deliveryCountry = delivery
	return nil
}

func (d *CountryDistance) setDistance(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance is invalid",
			fmt.Errorf("%g is negative", distanceKm))
	}
	d.distanceKm = distanceKm
	return nil
}
