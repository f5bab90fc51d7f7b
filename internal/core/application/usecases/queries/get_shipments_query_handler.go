package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/shipment"
)

// GetShipmentsQueryHandler lists a user's shipments from the database,
// including canceled ones so the dashboard shows the full history.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for shipment list queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the query and returns the user's shipments, newest first.
func (h GetShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsQuery,
) ([]GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			p.tracking_id,
			s.status,
			s.origin,
			s.destination,
			s.created_at
		FROM shipments s
		JOIN parcels p ON p.id = s.parcel_id
		WHERE p.sender_id = ?
		ORDER BY s.created_at DESC
	`, query.SenderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetShipmentsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.TrackingID,
			&status,
			&resp.Origin,
			&resp.Destination,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ShipmentID = shipmentID
		resp.Status = shipment.Status(status).String()

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
