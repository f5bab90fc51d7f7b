// Package shipment holds the Shipment aggregate root and the records it owns:
// packaging, payment, and the lifecycle status machine. A shipment is
// materialized exactly once per parcel when the checkout draft is committed,
// then managed through the Pending -> Successful / Canceled lifecycle.
package shipment

import (
	"errors"
	"fmt"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment factory method.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrShipmentNotEditable is returned when customs details are edited on a
	// shipment that already left the Pending status.
	ErrShipmentNotEditable = errors.New("shipment details can only be edited while Pending")
)

// CustomsDetails carries the customs-declaration fields entered at the
// edit-details step. All fields are optional form data; they are stored as
// given.
type CustomsDetails struct {
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

// Shipment is the aggregate root tying together everything the checkout flow
// produced: the parcel being shipped, the checkout contact info, and the
// packaging and payment records it owns exclusively. Its status field is the
// authoritative lifecycle state.
//
// Invariants:
//   - a shipment references exactly one parcel and one checkout
//   - at most one packaging and one payment are attached
//   - status transitions are one-directional (see Status)
//   - a shipment is never re-created for the same parcel
type Shipment struct {
	id         kernel.UUID
	parcelID   kernel.UUID
	checkoutID kernel.UUID

	origin      string
	destination string
	weightKg    float64

	status    Status
	image     string
	customs   CustomsDetails
	packaging *Packaging
	payment   *Payment
	createdAt time.Time

	isConstructed bool
}

// NewShipment materializes a shipment for a parcel in Pending status.
// Origin and destination are the checkout's pickup and delivery countries.
func NewShipment(
	id kernel.UUID,
	parcelID kernel.UUID,
	checkoutID kernel.UUID,
	origin string,
	destination string,
	weightKg float64,
) (*Shipment, error) {
	s := &Shipment{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setParcelID(parcelID),
		s.setCheckoutID(checkoutID),
		s.setRoute(origin, destination),
		s.setWeight(weightKg),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence, including its
// status, owned records, and customs details.
func RestoreShipment(
	id kernel.UUID,
	parcelID kernel.UUID,
	checkoutID kernel.UUID,
	origin string,
	destination string,
	weightKg float64,
	status Status,
	image string,
	customs CustomsDetails,
	packaging *Packaging,
	payment *Payment,
	createdAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(id, parcelID, checkoutID, origin, destination, weightKg)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if packaging != nil {
		if err = packaging.Validate(); err != nil {
			return nil, err
		}
	}
	if payment != nil {
		if err = payment.Validate(); err != nil {
			return nil, err
		}
	}

	s.status = status
	s.image = image
	s.customs = customs
	s.packaging = packaging
	s.payment = payment
	s.createdAt = createdAt
	return s, nil
}

// Validate ensures the Shipment was properly constructed through NewShipment.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// ParcelID returns the identifier of the parcel being shipped.
func (s *Shipment) ParcelID() kernel.UUID {
	return s.parcelID
}

// CheckoutID returns the identifier of the associated checkout record.
func (s *Shipment) CheckoutID() kernel.UUID {
	return s.checkoutID
}

// Origin returns the pickup country.
func (s *Shipment) Origin() string {
	return s.origin
}

// Destination returns the delivery country.
func (s *Shipment) Destination() string {
	return s.destination
}

// WeightKg returns the shipped weight in kilograms.
func (s *Shipment) WeightKg() float64 {
	return s.weightKg
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// Image returns the reference to the uploaded shipment image, if any.
func (s *Shipment) Image() string {
	return s.image
}

// Customs returns the customs-declaration details.
func (s *Shipment) Customs() CustomsDetails {
	return s.customs
}

// Packaging returns the attached packaging record, or nil.
func (s *Shipment) Packaging() *Packaging {
	return s.packaging
}

// Payment returns the attached payment record, or nil.
func (s *Shipment) Payment() *Payment {
	return s.payment
}

// CreatedAt returns the shipment's creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// AttachPackaging attaches the packaging record chosen at the packaging step.
// Re-attaching replaces the previous record (form resubmission).
func (s *Shipment) AttachPackaging(packaging *Packaging) error {
	if err := packaging.Validate(); err != nil {
		return err
	}

	s.packaging = packaging
	return nil
}

// AttachPayment attaches the payment record entered at the payment step.
// Re-attaching replaces the previous record (payment retry after a decline).
func (s *Shipment) AttachPayment(payment *Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	s.payment = payment
	return nil
}

// MarkSuccessful transitions the shipment to Successful after the payment was
// authorized. Only valid from Pending; the transition is irreversible.
func (s *Shipment) MarkSuccessful() error {
	newStatus, err := s.status.MarkSuccessful()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Cancel soft-deletes the shipment by moving it to Canceled. The row is kept
// so dependent records and the audit trail stay intact. Cancelling an already
// Canceled shipment is a no-op returning the current state.
func (s *Shipment) Cancel() (Status, error) {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return 0, err
	}

	s.status = newStatus
	return s.status, nil
}

// SetImage stores the reference to an uploaded shipment image.
func (s *Shipment) SetImage(ref string) {
	s.image = ref
}

// UpdateDetails replaces the customs-declaration fields. Details are only
// editable while the shipment is Pending.
func (s *Shipment) UpdateDetails(customs CustomsDetails) error {
	if s.status != Pending {
		return ErrShipmentNotEditable
	}

	s.customs = customs
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	s.parcelID = parcelID
	return nil
}

func (s *Shipment) setCheckoutID(checkoutID kernel.UUID) error {
	if err := checkoutID.Validate(); err != nil {
		return err
	}
	s.checkoutID = checkoutID
	return nil
}

func (s *Shipment) setRoute(origin string, destination string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	s.origin = origin
	s.destination = destination
	return nil
}

func (s *Shipment) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%g is not greater than 0", weightKg))
	}
	s.weightKg = weightKg
	return nil
}
