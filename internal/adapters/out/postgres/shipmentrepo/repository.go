package shipmentrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/shipment"
	"swiftdrop/internal/pkg/errs"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment and its owned packaging and payment records.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.saveOwned(ctx, aggregate); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment and its owned records.
// Select("*") writes zeroed columns back too, keeping cleared customs fields
// and the status column consistent.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.saveOwned(ctx, aggregate); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID, loading its owned records.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return r.loadAggregate(ctx, dto)
}

// GetByTrackingID retrieves the shipment whose parcel carries the given
// tracking id.
func (r *GormShipmentRepository) GetByTrackingID(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (*shipment.Shipment, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = (?)", r.db.
			Table("parcels").
			Select("id").
			Where("tracking_id = ?", trackingID.String())).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingId", trackingID.String())
		}
		return nil, err
	}

	return r.loadAggregate(ctx, dto)
}

// FindPaymentByFingerprint looks up an existing payment with identical card
// fields. Returns nil without error when no such payment exists.
func (r *GormShipmentRepository) FindPaymentByFingerprint(
	ctx context.Context,
	fingerprint string,
) (*shipment.Payment, error) {
	var dto PaymentDTO
	err := r.db.WithContext(ctx).First(&dto, "fingerprint = ?", fingerprint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return paymentToDomain(dto)
}

// saveOwned upserts the attached packaging and payment rows. Re-attachment
// replaces field values under the same primary key, and a payment reused by
// fingerprint is simply written again unchanged.
func (r *GormShipmentRepository) saveOwned(ctx context.Context, aggregate *shipment.Shipment) error {
	if p := aggregate.Packaging(); p != nil {
		dto := packagingFromDomain(p)
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&dto).Error
		if err != nil {
			return err
		}
	}

	if p := aggregate.Payment(); p != nil {
		dto := paymentFromDomain(p)
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&dto).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// loadAggregate fetches the owned rows referenced by the shipment DTO and
// assembles the domain aggregate.
func (r *GormShipmentRepository) loadAggregate(ctx context.Context, dto ShipmentDTO) (*shipment.Shipment, error) {
	var packaging *PackagingDTO
	if dto.PackagingID != nil {
		var p PackagingDTO
		if err := r.db.WithContext(ctx).First(&p, "id = ?", *dto.PackagingID).Error; err != nil {
			return nil, err
		}
		packaging = &p
	}

	var payment *PaymentDTO
	if dto.PaymentID != nil {
		var p PaymentDTO
		if err := r.db.WithContext(ctx).First(&p, "id = ?", *dto.PaymentID).Error; err != nil {
			return nil, err
		}
		payment = &p
	}

	return toDomain(dto, packaging, payment)
}
