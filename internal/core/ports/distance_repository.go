package ports

import (
	"context"

	"swiftdrop/internal/core/domain/model/distance"
)

// DistanceRepository defines the persistence contract for memoized
// country-pair distances.
type DistanceRepository interface {
	// Upsert stores the distance for an ordered country pair, overwriting any
	// existing row. Last write wins.
	Upsert(ctx context.Context, record *distance.CountryDistance) error

	// Get retrieves the memoized distance for an ordered country pair.
	// Returns errs.ObjectNotFoundError when the pair was never stored.
	Get(ctx context.Context, pickupCountry, deliveryCountry string) (*distance.CountryDistance, error)
}
