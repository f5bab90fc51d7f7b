package parcelrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/parcel"
	"swiftdrop/internal/pkg/errs"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel to the database.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ParcelDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingID retrieves the parcel carrying the given tracking id.
func (r *GormParcelRepository) GetByTrackingID(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (*parcel.Parcel, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_id = ?", trackingID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingId", trackingID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByTrackingID reports whether any parcel carries the given tracking id.
func (r *GormParcelRepository) ExistsByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (bool, error) {
	if err := trackingID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ParcelDTO{}).
		Where("tracking_id = ?", trackingID.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// DeleteProvisional bulk-deletes every parcel without a tracking id.
func (r *GormParcelRepository) DeleteProvisional(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("tracking_id IS NULL").Delete(&ParcelDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
