package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"swiftdrop/internal/core/domain/model/shipment"
	"swiftdrop/internal/pkg/errs"
)

// TrackShipmentQueryHandler resolves a tracking id to the shipment view shown
// on the tracking page. Reads through the parcel table because the tracking id
// lives on the parcel, not the shipment.
type TrackShipmentQueryHandler struct {
	db *gorm.DB
}

// NewTrackShipmentQueryHandler creates a handler for tracking lookups.
// Requires a GORM database connection for query execution.
func NewTrackShipmentQueryHandler(db *gorm.DB) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{db: db}
}

// Handle executes the tracking lookup.
// Returns errs.ObjectNotFoundError when no shipment carries the tracking id.
func (h TrackShipmentQueryHandler) Handle(
	ctx context.Context,
	query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	var resp TrackShipmentQueryResponse
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.tracking_id,
			s.status,
			s.origin,
			s.destination,
			s.weight_kg,
			s.created_at
		FROM shipments s
		JOIN parcels p ON p.id = s.parcel_id
		WHERE p.tracking_id = ?
	`, query.TrackingID().String()).Row()

	err := row.Scan(
		&resp.TrackingID,
		&status,
		&resp.Origin,
		&resp.Destination,
		&resp.WeightKg,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackShipmentQueryResponse{},
				errs.NewObjectNotFoundError("trackingId", query.TrackingID().String())
		}
		return TrackShipmentQueryResponse{}, err
	}

	resp.Status = shipment.Status(status).String()
	return resp, nil
}
