package ports

import (
	"context"

	"swiftdrop/internal/core/domain/model/kernel"
)

// Geocoder resolves a free-form place name to coordinates.
// The second return value is false when the provider has no result for the
// place; an error means the provider could not be reached at all. Callers
// treat both as a miss and degrade to distance-free pricing.
type Geocoder interface {
	Resolve(ctx context.Context, place string) (kernel.GeoPoint, bool, error)
}
