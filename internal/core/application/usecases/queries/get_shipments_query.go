package queries

import (
	"errors"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/guard"
)

var ErrGetShipmentsQueryIsNotConstructed = errors.New(
	"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
)

// GetShipmentsQuery retrieves all shipments belonging to a user for the
// manage-shipments dashboard, newest first.
type GetShipmentsQuery struct {
	senderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a query for a user's shipment list.
func NewGetShipmentsQuery(senderID kernel.UUID) (GetShipmentsQuery, error) {
	if err := senderID.Validate(); err != nil {
		return GetShipmentsQuery{}, err
	}

	return GetShipmentsQuery{
		senderID: senderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// SenderID returns the owner whose shipments are listed.
func (q GetShipmentsQuery) SenderID() kernel.UUID {
	return q.senderID
}

// GetShipmentsQueryResponse is one row of the manage-shipments dashboard.
type GetShipmentsQueryResponse struct {
	ShipmentID  kernel.UUID
	TrackingID  string
	Status      string
	Origin      string
	Destination string
	CreatedAt   time.Time
}
