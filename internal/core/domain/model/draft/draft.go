// Package draft holds the in-progress checkout aggregate. A draft is created
// when a quote is accepted and lives in the draft store until it is confirmed
// or expires; it carries the quote snapshot and the per-step payloads that are
// written to durable storage when the draft is committed at the payment step.
package draft

import (
	"errors"
	"time"

	"swiftdrop/internal/core/domain/model/checkout"
	"swiftdrop/internal/core/domain/model/kernel"
)

var (
	// ErrDraftIsNotConstructed is returned when a Draft instance was not
	// created through the NewDraft factory method.
	ErrDraftIsNotConstructed = errors.New("Draft must be created via NewDraft constructor")

	// ErrDraftAlreadyCommitted is returned when a contact or packaging step is
	// edited after the draft was committed to durable storage.
	ErrDraftAlreadyCommitted = errors.New("draft is already committed, earlier steps can no longer be edited")

	// ErrDraftAlreadyConfirmed is returned when any step is edited after the
	// payment was authorized.
	ErrDraftAlreadyConfirmed = errors.New("draft is already confirmed")

	// ErrDraftNotCommitted is returned when Confirm is called before the draft
	// was committed.
	ErrDraftNotCommitted = errors.New("draft is not committed yet")
)

// QuoteSnapshot freezes the quote shown when the checkout started. DistanceKm
// and TransitHours are nil when geocoding could not resolve the route.
type QuoteSnapshot struct {
	Price        float64
	DistanceKm   *float64
	TransitHours *float64
}

// ContactPayload carries the contact-details step form data.
type ContactPayload struct {
	Sender   checkout.Party
	Receiver checkout.Party
	VatTaxID string
}

// PackagingPayload carries the packaging step form data.
type PackagingPayload struct {
	Type     string
	Quantity int
	WeightKg float64
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// PaymentPayload carries the payment step form data.
type PaymentPayload struct {
	CardholderName string
	CardNumber     string
	CardType       string
	CardBrand      string
	ExpiryMonth    int
	ExpiryYear     int
	CVV            string
}

// Draft is the in-progress checkout aggregate, keyed by the tracking id that
// was assigned when the checkout started. Steps advance strictly in order;
// re-entering a completed step overwrites that step's payload and resets every
// strictly later step.
//
// Invariants:
//   - the step order is Quoted -> ContactEntered -> Packaged -> Paid -> Confirmed
//   - entering a step requires the previous step to be complete
//   - once committed, contact and packaging payloads are frozen
//   - a confirmed draft accepts no further edits
type Draft struct {
	id         kernel.TrackingID
	senderID   kernel.UUID
	parcelID   kernel.UUID
	checkoutID kernel.UUID

	quote     QuoteSnapshot
	contact   *ContactPayload
	packaging *PackagingPayload
	payment   *PaymentPayload

	step       Step
	shipmentID *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewDraft creates a draft in the Quoted step for a freshly started checkout.
func NewDraft(
	id kernel.TrackingID,
	senderID kernel.UUID,
	parcelID kernel.UUID,
	checkoutID kernel.UUID,
	quote QuoteSnapshot,
) (*Draft, error) {
	if err := errors.Join(
		id.Validate(),
		senderID.Validate(),
		parcelID.Validate(),
		checkoutID.Validate(),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Draft{
		id:         id,
		senderID:   senderID,
		parcelID:   parcelID,
		checkoutID: checkoutID,
		quote:      quote,
		step:       Quoted,
		createdAt:  now,
		updatedAt:  now,

		isConstructed: true,
	}, nil
}

// Validate ensures the Draft was properly constructed through NewDraft.
func (d *Draft) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDraftIsNotConstructed
	}

	return nil
}

// ID returns the tracking id the draft is keyed by.
func (d *Draft) ID() kernel.TrackingID {
	return d.id
}

// SenderID returns the identifier of the user running the checkout.
func (d *Draft) SenderID() kernel.UUID {
	return d.senderID
}

// ParcelID returns the identifier of the tracked parcel.
func (d *Draft) ParcelID() kernel.UUID {
	return d.parcelID
}

// CheckoutID returns the identifier of the partial checkout record.
func (d *Draft) CheckoutID() kernel.UUID {
	return d.checkoutID
}

// Quote returns the quote snapshot taken when the checkout started.
func (d *Draft) Quote() QuoteSnapshot {
	return d.quote
}

// Contact returns the contact payload, or nil if the step was not entered.
func (d *Draft) Contact() *ContactPayload {
	return d.contact
}

// Packaging returns the packaging payload, or nil if the step was not entered.
func (d *Draft) Packaging() *PackagingPayload {
	return d.packaging
}

// Payment returns the payment payload, or nil if the step was not entered.
func (d *Draft) Payment() *PaymentPayload {
	return d.payment
}

// Step returns the draft's current checkout step.
func (d *Draft) Step() Step {
	return d.step
}

// CreatedAt returns the draft's creation timestamp.
func (d *Draft) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the timestamp of the last step edit. The expiry job uses
// it to drop idle drafts.
func (d *Draft) UpdatedAt() time.Time {
	return d.updatedAt
}

// CommittedShipmentID returns the shipment the draft was committed to, if any.
func (d *Draft) CommittedShipmentID() (kernel.UUID, bool) {
	if d.shipmentID == nil {
		return kernel.UUID{}, false
	}
	return *d.shipmentID, true
}

// EnterContact records the contact-details step. Re-entering overwrites the
// payload and resets the packaging and payment steps.
func (d *Draft) EnterContact(payload ContactPayload) error {
	if d.step == Confirmed {
		return ErrDraftAlreadyConfirmed
	}
	if d.shipmentID != nil {
		return ErrDraftAlreadyCommitted
	}

	d.contact = &payload
	d.packaging = nil
	d.payment = nil
	d.step = ContactEntered
	d.touch()
	return nil
}

// EnterPackaging records the packaging step. Requires the contact step to be
// complete; re-entering overwrites the payload and resets the payment step.
func (d *Draft) EnterPackaging(payload PackagingPayload) error {
	if d.step == Confirmed {
		return ErrDraftAlreadyConfirmed
	}
	if d.shipmentID != nil {
		return ErrDraftAlreadyCommitted
	}
	if d.step < ContactEntered {
		return NewMissingPrerequisiteError(ContactEntered)
	}

	d.packaging = &payload
	d.payment = nil
	d.step = Packaged
	d.touch()
	return nil
}

// EnterPayment records the payment step. Requires the packaging step to be
// complete. Re-entering is allowed after a decline, even once the draft was
// committed.
func (d *Draft) EnterPayment(payload PaymentPayload) error {
	if d.step == Confirmed {
		return ErrDraftAlreadyConfirmed
	}
	if d.step < Packaged {
		return NewMissingPrerequisiteError(Packaged)
	}

	d.payment = &payload
	d.step = Paid
	d.touch()
	return nil
}

// MarkCommitted records the shipment the draft's rows were written to. The
// marker makes the commit idempotent: a committed draft returns the existing
// shipment instead of writing new rows.
func (d *Draft) MarkCommitted(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if d.shipmentID != nil && !d.shipmentID.IsEqual(shipmentID) {
		return errors.New("draft is already committed to a different shipment")
	}

	d.shipmentID = &shipmentID
	d.touch()
	return nil
}

// Confirm marks the checkout finished after the payment was authorized.
// Requires the draft to be committed and in the Paid step. Terminal.
func (d *Draft) Confirm() error {
	if d.step == Confirmed {
		return ErrDraftAlreadyConfirmed
	}
	if d.step < Paid {
		return NewMissingPrerequisiteError(Paid)
	}
	if d.shipmentID == nil {
		return ErrDraftNotCommitted
	}

	d.step = Confirmed
	d.touch()
	return nil
}

func (d *Draft) touch() {
	d.updatedAt = time.Now().UTC()
}
