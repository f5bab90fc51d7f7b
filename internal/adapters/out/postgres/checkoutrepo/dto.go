// Package checkoutrepo provides data transfer objects and mapping functions
// for checkout and address-book contact persistence. Party details are
// flattened into embedded column groups so the checkout stays a single row.
package checkoutrepo

import (
	"github.com/google/uuid"

	"swiftdrop/internal/core/domain/model/checkout"
	"swiftdrop/internal/core/domain/model/kernel"
)

// CheckoutDTO represents the database structure for persisting checkout
// records. Sender and receiver parties are embedded with column prefixes;
// a partial checkout simply has empty party columns.
type CheckoutDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID        uuid.UUID `gorm:"type:uuid;index"`
	PickupCountry   string
	PickupZip       string
	DeliveryCountry string
	DeliveryZip     string
	Sender          PartyDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver        PartyDTO `gorm:"embedded;embeddedPrefix:receiver_"`
	VatTaxID        string
}

// TableName specifies the database table name for checkout entities.
func (CheckoutDTO) TableName() string {
	return "checkouts"
}

// PartyDTO represents one side's contact details embedded in a checkout or
// contact row.
type PartyDTO struct {
	Name        string
	Company     string
	Address     string
	Address2    string
	Address3    string
	City        string
	State       string
	Email       string
	PhoneType   string
	PhoneCode   string
	PhoneNumber string
}

// ContactDTO represents the database structure for address-book contacts.
// One row per user and sender name.
type ContactDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;index:idx_contacts_user_name"`
	Name    string    `gorm:"index:idx_contacts_user_name"`
	Details PartyDTO  `gorm:"embedded;embeddedPrefix:details_"`
	Country string
	ZipCode string
}

// TableName specifies the database table name for contact entities.
func (ContactDTO) TableName() string {
	return "contacts"
}

func partyFromDomain(p checkout.Party) PartyDTO {
	return PartyDTO{
		Name:        p.Name,
		Company:     p.Company,
		Address:     p.Address,
		Address2:    p.Address2,
		Address3:    p.Address3,
		City:        p.City,
		State:       p.State,
		Email:       p.Email,
		PhoneType:   p.PhoneType,
		PhoneCode:   p.PhoneCode,
		PhoneNumber: p.PhoneNumber,
	}
}

func partyToDomain(dto PartyDTO) checkout.Party {
	return checkout.Party{
		Name:        dto.Name,
		Company:     dto.Company,
		Address:     dto.Address,
		Address2:    dto.Address2,
		Address3:    dto.Address3,
		City:        dto.City,
		State:       dto.State,
		Email:       dto.Email,
		PhoneType:   dto.PhoneType,
		PhoneCode:   dto.PhoneCode,
		PhoneNumber: dto.PhoneNumber,
	}
}

// fromDomain converts a checkout domain entity to its database representation.
func fromDomain(c *checkout.Checkout) CheckoutDTO {
	return CheckoutDTO{
		ID:              c.ID().Bytes(),
		ParcelID:        c.ParcelID().Bytes(),
		PickupCountry:   c.PickupCountry(),
		PickupZip:       c.PickupZip(),
		DeliveryCountry: c.DeliveryCountry(),
		DeliveryZip:     c.DeliveryZip(),
		Sender:          partyFromDomain(c.Sender()),
		Receiver:        partyFromDomain(c.Receiver()),
		VatTaxID:        c.VatTaxID(),
	}
}

// toDomain converts a database DTO to a checkout domain entity.
func toDomain(dto CheckoutDTO) (*checkout.Checkout, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return checkout.RestoreCheckout(
		id, parcelID,
		dto.PickupCountry, dto.PickupZip,
		dto.DeliveryCountry, dto.DeliveryZip,
		partyToDomain(dto.Sender), partyToDomain(dto.Receiver),
		dto.VatTaxID,
	)
}

// contactFromDomain converts a contact domain entity to its database
// representation. The lookup name column mirrors the details.
func contactFromDomain(c *checkout.Contact) ContactDTO {
	return ContactDTO{
		ID:      c.ID().Bytes(),
		UserID:  c.UserID().Bytes(),
		Name:    c.Details().Name,
		Details: partyFromDomain(c.Details()),
		Country: c.Country(),
		ZipCode: c.ZipCode(),
	}
}

// contactToDomain converts a database DTO to a contact domain entity.
func contactToDomain(dto ContactDTO) (*checkout.Contact, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return checkout.RestoreContact(id, userID, partyToDomain(dto.Details), dto.Country, dto.ZipCode)
}
