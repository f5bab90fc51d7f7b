package ports

import (
	"context"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates,
// including their owned packaging and payment records.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate with its owned records.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingID retrieves the shipment of the parcel carrying the given
	// tracking id. Returns errs.ObjectNotFoundError when none exists.
	GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*shipment.Shipment, error)

	// FindPaymentByFingerprint retrieves an existing payment record whose
	// fields exactly match the given fingerprint. Returns nil, nil on a miss.
	// Used to reuse payment rows instead of inserting duplicates.
	FindPaymentByFingerprint(ctx context.Context, fingerprint string) (*shipment.Payment, error)
}
