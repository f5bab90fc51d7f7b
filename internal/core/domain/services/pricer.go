package services

import (
	"fmt"

	"swiftdrop/internal/pkg/errs"
)

const (
	// volumetricDivisor converts a parcel's volume in cubic centimeters into
	// the dimensional-weight factor used by the base price.
	volumetricDivisor = 5000.0

	// ratePerKm is the surcharge applied for every kilometer of route distance.
	ratePerKm = 0.1

	// transitSpeedKmPerHour is the assumed shipping speed used to estimate
	// transit time from route distance.
	transitSpeedKmPerHour = 800.0
)

// Quote is the result of pricing a parcel. DistanceKm and TransitHours are nil
// when the route distance is unknown; the price then covers the base component
// only. Absent is never reported as zero.
type Quote struct {
	Price        float64
	DistanceKm   *float64
	TransitHours *float64
}

// Pricer is a domain service computing shipping quotes from parcel
// measurements and an optional route distance.
//
// Pricing rules:
//   - base price = weight * (length * width * height / 5000)
//   - with a known distance: price = base + distance * 0.1
//   - transit time = distance / 800, in hours
//   - unknown distance degrades to the base price with no estimates
type Pricer struct{}

// NewPricer creates a new Pricer instance.
func NewPricer() Pricer {
	return Pricer{}
}

// Quote prices a parcel. All measurements must be strictly positive;
// distanceKm is optional and nil means the route could not be resolved.
func (p Pricer) Quote(weightKg, lengthCm, widthCm, heightCm float64, distanceKm *float64) (Quote, error) {
	for _, m := range []struct {
		name  string
		value float64
	}{
		{"weight", weightKg},
		{"length", lengthCm},
		{"width", widthCm},
		{"height", heightCm},
	} {
		if m.value <= 0 {
			return Quote{}, errs.NewValueIsInvalidErrorWithCause(m.name+" is invalid",
				fmt.Errorf("%g is not greater than 0", m.value))
		}
	}

	basePrice := weightKg * (lengthCm * widthCm * heightCm / volumetricDivisor)

	if distanceKm == nil {
		return Quote{Price: basePrice}, nil
	}

	if *distanceKm < 0 {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause("distance is invalid",
			fmt.Errorf("%g is negative", *distanceKm))
	}

	distance := *distanceKm
	transitHours := distance / transitSpeedKmPerHour
	return Quote{
		Price:        basePrice + distance*ratePerKm,
		DistanceKm:   &distance,
		TransitHours: &transitHours,
	}, nil
}
