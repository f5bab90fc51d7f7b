package checkout

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
)

// ErrContactIsNotConstructed is returned when a Contact instance was not
// created through the NewContact factory method.
var ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact constructor")

// Contact is a per-user address-book entry used to prefill checkout forms
// with the sender details from the user's previous shipment. It is a cache of
// "last used" data, never authoritative for any shipment.
type Contact struct {
	id      kernel.UUID
	userID  kernel.UUID
	details Party
	country string
	zipCode string

	isConstructed bool
}

// NewContact creates an address-book entry for a user.
func NewContact(id kernel.UUID, userID kernel.UUID, details Party, country string, zipCode string) (*Contact, error) {
	c := &Contact{
		details:       details,
		country:       country,
		zipCode:       zipCode,
		isConstructed: true,
	}

	if err := errors.Join(id.Validate(), userID.Validate()); err != nil {
		return nil, err
	}
	c.id = id
	c.userID = userID

	return c, nil
}

// RestoreContact reconstructs a contact from persistence.
func RestoreContact(id kernel.UUID, userID kernel.UUID, details Party, country string, zipCode string) (*Contact, error) {
	return NewContact(id, userID, details, country, zipCode)
}

// Validate ensures the Contact was properly constructed through NewContact.
func (c *Contact) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContactIsNotConstructed
	}

	return nil
}

// ID returns the contact's unique identifier.
func (c *Contact) ID() kernel.UUID {
	return c.id
}

// UserID returns the owning user's identifier.
func (c *Contact) UserID() kernel.UUID {
	return c.userID
}

// Details returns the stored contact details.
func (c *Contact) Details() Party {
	return c.details
}

// Country returns the stored country.
func (c *Contact) Country() string {
	return c.country
}

// ZipCode returns the stored zip code.
func (c *Contact) ZipCode() string {
	return c.zipCode
}

// Refresh overwrites the stored details with the sender data from the latest
// shipment, keeping the prefill cache current.
func (c *Contact) Refresh(details Party, country string, zipCode string) {
	c.details = details
	c.country = country
	c.zipCode = zipCode
}
