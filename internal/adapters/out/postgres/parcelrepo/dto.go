// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. Implements the repository pattern for the parcel domain
// aggregate, handling the conversion between domain entities and database rows.
package parcelrepo

import (
	"time"

	"github.com/google/uuid"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/parcel"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The tracking id is nullable: provisional parcels have none
// until a checkout is started.
type ParcelDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderID        uuid.UUID `gorm:"type:uuid;index"`
	PickupCountry   string
	DeliveryCountry string
	WeightKg        float64
	LengthCm        float64
	WidthCm         float64
	HeightCm        float64
	TrackingID      *string `gorm:"uniqueIndex"`
	CreatedAt       time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	var trackingID *string
	if id := p.TrackingID(); id != nil {
		value := id.String()
		trackingID = &value
	}

	return ParcelDTO{
		ID:              p.ID().Bytes(),
		SenderID:        p.SenderID().Bytes(),
		PickupCountry:   p.PickupCountry(),
		DeliveryCountry: p.DeliveryCountry(),
		WeightKg:        p.WeightKg(),
		LengthCm:        p.LengthCm(),
		WidthCm:         p.WidthCm(),
		HeightCm:        p.HeightCm(),
		TrackingID:      trackingID,
		CreatedAt:       p.CreatedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	var trackingID *kernel.TrackingID
	if dto.TrackingID != nil {
		parsed, trackErr := kernel.TrackingIDFromString(*dto.TrackingID)
		if trackErr != nil {
			return nil, trackErr
		}
		trackingID = &parsed
	}

	return parcel.RestoreParcel(
		id, senderID,
		dto.PickupCountry, dto.DeliveryCountry,
		dto.WeightKg, dto.LengthCm, dto.WidthCm, dto.HeightCm,
		trackingID, dto.CreatedAt,
	)
}
