// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. The shipment row references its owned packaging
// and payment rows, which live in their own tables so payments can be
// deduplicated across shipments by fingerprint.
package shipmentrepo

import (
	"time"

	"github.com/google/uuid"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Customs fields are embedded with a customs_ prefix.
type ShipmentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID    uuid.UUID `gorm:"type:uuid;index"`
	CheckoutID  uuid.UUID `gorm:"type:uuid"`
	Origin      string
	Destination string
	WeightKg    float64
	Status      int
	Image       string
	Customs     CustomsDTO `gorm:"embedded;embeddedPrefix:customs_"`
	PackagingID *uuid.UUID `gorm:"type:uuid"`
	PaymentID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// CustomsDTO holds the customs-declaration columns embedded in a shipment row.
type CustomsDTO struct {
	ShippingType    string
	Description     string
	Value           float64
	ItemDescription string
	ManufacturerID  string
	Quantity        int
	Units           string
	ItemValue       float64
	CountryOfOrigin string
	ScheduleB       string
	Reference       string
	InvoiceValue    float64
}

// PackagingDTO represents the database structure for packaging records.
type PackagingDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackagingType string
	Quantity      int
	WeightKg      float64
	LengthCm      float64
	WidthCm       float64
	HeightCm      float64
}

// TableName specifies the database table name for packaging entities.
func (PackagingDTO) TableName() string {
	return "packagings"
}

// PaymentDTO represents the database structure for payment records. The
// fingerprint column enforces field-level deduplication.
type PaymentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CardholderName string
	CardNumber     string
	CardType       string
	CardBrand      string
	ExpiryMonth    int
	ExpiryYear     int
	CVV            string
	Fingerprint    string `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

func customsFromDomain(c shipment.CustomsDetails) CustomsDTO {
	return CustomsDTO{
		ShippingType:    c.ShippingType,
		Description:     c.Description,
		Value:           c.Value,
		ItemDescription: c.ItemDescription,
		ManufacturerID:  c.ManufacturerID,
		Quantity:        c.Quantity,
		Units:           c.Units,
		ItemValue:       c.ItemValue,
		CountryOfOrigin: c.CountryOfOrigin,
		ScheduleB:       c.ScheduleB,
		Reference:       c.Reference,
		InvoiceValue:    c.InvoiceValue,
	}
}

func customsToDomain(dto CustomsDTO) shipment.CustomsDetails {
	return shipment.CustomsDetails{
		ShippingType:    dto.ShippingType,
		Description:     dto.Description,
		Value:           dto.Value,
		ItemDescription: dto.ItemDescription,
		ManufacturerID:  dto.ManufacturerID,
		Quantity:        dto.Quantity,
		Units:           dto.Units,
		ItemValue:       dto.ItemValue,
		CountryOfOrigin: dto.CountryOfOrigin,
		ScheduleB:       dto.ScheduleB,
		Reference:       dto.Reference,
		InvoiceValue:    dto.InvoiceValue,
	}
}

func packagingFromDomain(p *shipment.Packaging) PackagingDTO {
	return PackagingDTO{
		ID:            p.ID().Bytes(),
		PackagingType: p.Type(),
		Quantity:      p.Quantity(),
		WeightKg:      p.WeightKg(),
		LengthCm:      p.LengthCm(),
		WidthCm:       p.WidthCm(),
		HeightCm:      p.HeightCm(),
	}
}

func packagingToDomain(dto PackagingDTO) (*shipment.Packaging, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestorePackaging(
		id, dto.PackagingType, dto.Quantity,
		dto.WeightKg, dto.LengthCm, dto.WidthCm, dto.HeightCm,
	)
}

func paymentFromDomain(p *shipment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:             p.ID().Bytes(),
		CardholderName: p.CardholderName(),
		CardNumber:     p.CardNumber(),
		CardType:       p.CardType(),
		CardBrand:      p.CardBrand(),
		ExpiryMonth:    p.ExpiryMonth(),
		ExpiryYear:     p.ExpiryYear(),
		CVV:            p.CVV(),
		Fingerprint:    p.Fingerprint(),
	}
}

func paymentToDomain(dto PaymentDTO) (*shipment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestorePayment(
		id,
		dto.CardholderName, dto.CardNumber,
		dto.CardType, dto.CardBrand,
		dto.ExpiryMonth, dto.ExpiryYear,
		dto.CVV,
	)
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(s *shipment.Shipment) ShipmentDTO {
	dto := ShipmentDTO{
		ID:          s.ID().Bytes(),
		ParcelID:    s.ParcelID().Bytes(),
		CheckoutID:  s.CheckoutID().Bytes(),
		Origin:      s.Origin(),
		Destination: s.Destination(),
		WeightKg:    s.WeightKg(),
		Status:      int(s.Status()),
		Image:       s.Image(),
		Customs:     customsFromDomain(s.Customs()),
		CreatedAt:   s.CreatedAt(),
	}

	if p := s.Packaging(); p != nil {
		id := p.ID().Bytes()
		dto.PackagingID = &id
	}
	if p := s.Payment(); p != nil {
		id := p.ID().Bytes()
		dto.PaymentID = &id
	}

	return dto
}

// toDomain converts a database DTO plus its owned records to a shipment
// aggregate.
func toDomain(dto ShipmentDTO, packaging *PackagingDTO, payment *PaymentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	checkoutID, err := kernel.UUIDFromBytes(dto.CheckoutID[:])
	if err != nil {
		return nil, err
	}

	var pack *shipment.Packaging
	if packaging != nil {
		if pack, err = packagingToDomain(*packaging); err != nil {
			return nil, err
		}
	}

	var pay *shipment.Payment
	if payment != nil {
		if pay, err = paymentToDomain(*payment); err != nil {
			return nil, err
		}
	}

	return shipment.RestoreShipment(
		id, parcelID, checkoutID,
		dto.Origin, dto.Destination, dto.WeightKg,
		shipment.Status(dto.Status),
		dto.Image,
		customsToDomain(dto.Customs),
		pack, pay,
		dto.CreatedAt,
	)
}
