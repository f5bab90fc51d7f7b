// Package checkout holds the contact-and-routing side of a shipment: the
// Checkout entity that accumulates sender/receiver details across the
// multi-step flow, and the Contact address-book entry used to prefill it.
package checkout

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

// ErrCheckoutIsNotConstructed is returned when a Checkout instance was not
// created through the NewCheckout factory method.
var ErrCheckoutIsNotConstructed = errors.New("Checkout must be created via NewCheckout constructor")

// Checkout records who a parcel travels between. Exactly one Checkout exists
// per parcel. It is created with routing data only (countries and zip codes,
// known at quote time) and completed later when the customer enters the
// sender and receiver details.
type Checkout struct {
	id       kernel.UUID
	parcelID kernel.UUID

	pickupCountry   string
	pickupZip       string
	deliveryCountry string
	deliveryZip     string

	sender   Party
	receiver Party
	vatTaxID string

	isConstructed bool
}

// NewCheckout creates a partial checkout carrying routing data only.
// Sender and receiver details are added later via Complete.
func NewCheckout(
	id kernel.UUID,
	parcelID kernel.UUID,
	pickupCountry string,
	pickupZip string,
	deliveryCountry string,
	deliveryZip string,
) (*Checkout, error) {
	c := &Checkout{
		pickupZip:     pickupZip,
		deliveryZip:   deliveryZip,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setParcelID(parcelID),
		c.setCountries(pickupCountry, deliveryCountry),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCheckout reconstructs a checkout from persistence.
func RestoreCheckout(
	id kernel.UUID,
	parcelID kernel.UUID,
	pickupCountry string,
	pickupZip string,
	deliveryCountry string,
	deliveryZip string,
	sender Party,
	receiver Party,
	vatTaxID string,
) (*Checkout, error) {
	c, err := NewCheckout(id, parcelID, pickupCountry, pickupZip, deliveryCountry, deliveryZip)
	if err != nil {
		return nil, err
	}

	c.sender = sender
	c.receiver = receiver
	c.vatTaxID = vatTaxID
	return c, nil
}

// Validate ensures the Checkout was properly constructed through NewCheckout.
func (c *Checkout) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCheckoutIsNotConstructed
	}

	return nil
}

// ID returns the checkout's unique identifier.
func (c *Checkout) ID() kernel.UUID {
	return c.id
}

// ParcelID returns the identifier of the parcel this checkout belongs to.
func (c *Checkout) ParcelID() kernel.UUID {
	return c.parcelID
}

// PickupCountry returns the pickup country captured at quote time.
func (c *Checkout) PickupCountry() string {
	return c.pickupCountry
}

// PickupZip returns the pickup zip code captured at quote time.
func (c *Checkout) PickupZip() string {
	return c.pickupZip
}

// DeliveryCountry returns the delivery country captured at quote time.
func (c *Checkout) DeliveryCountry() string {
	return c.deliveryCountry
}

// DeliveryZip returns the delivery zip code captured at quote time.
func (c *Checkout) DeliveryZip() string {
	return c.deliveryZip
}

// Sender returns the sender contact details.
func (c *Checkout) Sender() Party {
	return c.sender
}

// Receiver returns the receiver contact details.
func (c *Checkout) Receiver() Party {
	return c.receiver
}

// VatTaxID returns the VAT/tax identifier, if supplied.
func (c *Checkout) VatTaxID() string {
	return c.vatTaxID
}

// IsComplete reports whether sender and receiver details have been entered.
func (c *Checkout) IsComplete() bool {
	return !c.sender.IsZero() && !c.receiver.IsZero()
}

// Complete fills in the sender and receiver details entered at the contact
// step. Re-completing overwrites the previous details, which supports
// idempotent form resubmission.
func (c *Checkout) Complete(sender Party, receiver Party, vatTaxID string) error {
	if err := errors.Join(sender.Validate("sender"), receiver.Validate("receiver")); err != nil {
		return err
	}

	c.sender = sender
	c.receiver = receiver
	c.vatTaxID = vatTaxID
	return nil
}

func (c *Checkout) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Checkout) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *Checkout) setCountries(pickup string, delivery string) error {
	if pickup == "" {
		return errs.NewValueIsRequiredError("pickupCountry")
	}
	if delivery == "" {
		return errs.NewValueIsRequiredError("deliveryCountry")
	}

	c.pickupCountry = pickup
	c.deliveryCountry = delivery
	return nil
}
