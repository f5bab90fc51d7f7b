package checkoutrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"swiftdrop/internal/core/domain/model/checkout"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCheckoutRepository implements CheckoutRepository using GORM.
type GormCheckoutRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCheckoutRepository creates a new GORM checkout repository.
func NewGormCheckoutRepository(db *gorm.DB, tracker aggregateTracker) *GormCheckoutRepository {
	return &GormCheckoutRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new checkout to the database.
func (r *GormCheckoutRepository) Add(ctx context.Context, entity *checkout.Checkout) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Update saves an existing checkout to the database.
// Uses Select("*") so emptied party columns are written back too.
func (r *GormCheckoutRepository) Update(ctx context.Context, entity *checkout.Checkout) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	result := r.db.WithContext(ctx).Model(&CheckoutDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Get retrieves a checkout by ID.
func (r *GormCheckoutRepository) Get(ctx context.Context, id kernel.UUID) (*checkout.Checkout, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CheckoutDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("checkout", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GormContactRepository implements ContactRepository using GORM.
type GormContactRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormContactRepository creates a new GORM contact repository.
func NewGormContactRepository(db *gorm.DB, tracker aggregateTracker) *GormContactRepository {
	return &GormContactRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new contact to the database.
func (r *GormContactRepository) Add(ctx context.Context, entity *checkout.Contact) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := contactFromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Update saves an existing contact to the database.
func (r *GormContactRepository) Update(ctx context.Context, entity *checkout.Contact) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := contactFromDomain(entity)
	result := r.db.WithContext(ctx).Model(&ContactDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// GetByUserAndName retrieves the contact record for a user and sender name.
func (r *GormContactRepository) GetByUserAndName(
	ctx context.Context,
	userID kernel.UUID,
	name string,
) (*checkout.Contact, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto ContactDTO
	err := r.db.WithContext(ctx).
		First(&dto, "user_id = ? AND name = ?", userID.Bytes(), name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contact", name)
		}
		return nil, err
	}

	return contactToDomain(dto)
}
