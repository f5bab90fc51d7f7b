package queries

import (
	"errors"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery retrieves the public tracking view of a shipment by its
// tracking id. Powers the tracking page available to anyone holding the id.
type TrackShipmentQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a query for the tracking page.
func NewTrackShipmentQuery(trackingID kernel.TrackingID) (TrackShipmentQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return TrackShipmentQuery{}, err
	}

	return TrackShipmentQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// TrackingID returns the tracking id being looked up.
func (q TrackShipmentQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// TrackShipmentQueryResponse is the tracking-page view of a shipment.
type TrackShipmentQueryResponse struct {
	TrackingID  string
	Status      string
	Origin      string
	Destination string
	WeightKg    float64
	CreatedAt   time.Time
}
