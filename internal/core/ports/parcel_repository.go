package ports

import (
	"context"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Parcels start provisional (quoted but not checked out) and become tracked
// once a tracking id is assigned at checkout start.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingID retrieves the parcel carrying the given tracking id.
	// Returns errs.ObjectNotFoundError when no parcel carries it.
	GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*parcel.Parcel, error)

	// ExistsByTrackingID reports whether any parcel carries the given
	// tracking id. Used to regenerate colliding ids at checkout start.
	ExistsByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (bool, error)

	// DeleteProvisional bulk-deletes every parcel without a tracking id.
	// Returns the number of rows removed.
	DeleteProvisional(ctx context.Context) (int64, error)
}
