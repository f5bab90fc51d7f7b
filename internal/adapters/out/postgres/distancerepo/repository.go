package distancerepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"swiftdrop/internal/core/domain/model/distance"
	"swiftdrop/internal/pkg/errs"
)

// GormDistanceRepository implements DistanceRepository using GORM.
type GormDistanceRepository struct {
	db *gorm.DB
}

// NewGormDistanceRepository creates a new GORM distance repository.
func NewGormDistanceRepository(db *gorm.DB) *GormDistanceRepository {
	return &GormDistanceRepository{db: db}
}

// Upsert stores the distance for a country pair. An existing pair is
// overwritten, last write wins.
func (r *GormDistanceRepository) Upsert(ctx context.Context, record *distance.CountryDistance) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pickup_country"}, {Name: "delivery_country"}},
			DoUpdates: clause.AssignmentColumns([]string{"distance_km"}),
		}).
		Create(&dto).Error
}

// Get retrieves the memoized distance for an ordered country pair.
func (r *GormDistanceRepository) Get(
	ctx context.Context,
	pickupCountry, deliveryCountry string,
) (*distance.CountryDistance, error) {
	var dto CountryDistanceDTO
	err := r.db.WithContext(ctx).
		First(&dto, "pickup_country = ? AND delivery_country = ?", pickupCountry, deliveryCountry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("countryDistance",
				fmt.Sprintf("%s->%s", pickupCountry, deliveryCountry))
		}
		return nil, err
	}

	return toDomain(dto)
}
