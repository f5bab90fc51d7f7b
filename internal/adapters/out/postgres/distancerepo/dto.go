// Package distancerepo persists memoized country-to-country distances used as
// a fallback when live geocoding is unavailable.
package distancerepo

import (
	"swiftdrop/internal/core/domain/model/distance"
)

// CountryDistanceDTO represents the database structure for memoized distances.
// The country pair is the composite primary key.
type CountryDistanceDTO struct {
	PickupCountry   string `gorm:"primaryKey"`
	DeliveryCountry string `gorm:"primaryKey"`
	DistanceKm      float64
}

// TableName specifies the database table name for country distance entities.
func (CountryDistanceDTO) TableName() string {
	return "country_distances"
}

// fromDomain converts a country distance entity to its database representation.
func fromDomain(d *distance.CountryDistance) CountryDistanceDTO {
	return CountryDistanceDTO{
		PickupCountry:   d.PickupCountry(),
		DeliveryCountry: d.DeliveryCountry(),
		DistanceKm:      d.DistanceKm(),
	}
}

// toDomain converts a database DTO to a country distance entity.
func toDomain(dto CountryDistanceDTO) (*distance.CountryDistance, error) {
	return distance.RestoreCountryDistance(dto.PickupCountry, dto.DeliveryCountry, dto.DistanceKm)
}
