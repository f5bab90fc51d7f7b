package parcel

import (
	"errors"
	"fmt"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through the NewParcel factory method.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrTrackingAlreadyAssigned is returned when attempting to re-assign a tracking
	// identifier. The identifier is immutable once assigned.
	ErrTrackingAlreadyAssigned = errors.New("parcel already carries a tracking ID")
)

// Parcel represents a package submitted for shipping. It records who sends it,
// the pickup and delivery countries, and the physical measurements the quote is
// priced from.
//
// A parcel lives in two phases:
//   - provisional: created at quote time with no tracking identifier; it exists
//     only so a price could be computed and is swept lazily if abandoned
//   - tracked: a tracking identifier has been assigned because the customer
//     proceeded to checkout; the identifier is immutable from then on
//
// Parcel follows these invariants:
//   - weight and all three dimensions are strictly positive
//   - pickup and delivery countries are non-empty
//   - the tracking identifier, once assigned, never changes
type Parcel struct {
	id              kernel.UUID
	senderID        kernel.UUID
	pickupCountry   string
	deliveryCountry string
	weightKg        float64
	lengthCm        float64
	widthCm         float64
	heightCm        float64
	trackingID      *kernel.TrackingID
	createdAt       time.Time

	isConstructed bool
}

// NewParcel creates a provisional parcel (no tracking identifier yet).
// All measurements must be strictly positive and both countries non-empty.
func NewParcel(
	id kernel.UUID,
	senderID kernel.UUID,
	pickupCountry string,
	deliveryCountry string,
	weightKg float64,
	lengthCm float64,
	widthCm float64,
	heightCm float64,
) (*Parcel, error) {
	p := &Parcel{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSenderID(senderID),
		p.setCountries(pickupCountry, deliveryCountry),
		p.setMeasurements(weightKg, lengthCm, widthCm, heightCm),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence, including an optional
// tracking identifier and the original creation timestamp.
func RestoreParcel(
	id kernel.UUID,
	senderID kernel.UUID,
	pickupCountry string,
	deliveryCountry string,
	weightKg float64,
	lengthCm float64,
	widthCm float64,
	heightCm float64,
	trackingID *kernel.TrackingID,
	createdAt time.Time,
) (*Parcel, error) {
	p, err := NewParcel(id, senderID, pickupCountry, deliveryCountry, weightKg, lengthCm, widthCm, heightCm)
	if err != nil {
		return nil, err
	}

	if trackingID != nil {
		if err = trackingID.Validate(); err != nil {
			return nil, err
		}
		p.trackingID = trackingID
	}
	p.createdAt = createdAt

	return p, nil
}

// Validate ensures the Parcel instance was properly constructed through NewParcel.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// SenderID returns the identifier of the user who submitted the parcel.
func (p *Parcel) SenderID() kernel.UUID {
	return p.senderID
}

// PickupCountry returns the country the parcel is collected from.
func (p *Parcel) PickupCountry() string {
	return p.pickupCountry
}

// DeliveryCountry returns the country the parcel is delivered to.
func (p *Parcel) DeliveryCountry() string {
	return p.deliveryCountry
}

// WeightKg returns the declared weight in kilograms.
func (p *Parcel) WeightKg() float64 {
	return p.weightKg
}

// LengthCm returns the declared length in centimeters.
func (p *Parcel) LengthCm() float64 {
	return p.lengthCm
}

// WidthCm returns the declared width in centimeters.
func (p *Parcel) WidthCm() float64 {
	return p.widthCm
}

// HeightCm returns the declared height in centimeters.
func (p *Parcel) HeightCm() float64 {
	return p.heightCm
}

// TrackingID returns the assigned tracking identifier, or nil while provisional.
func (p *Parcel) TrackingID() *kernel.TrackingID {
	return p.trackingID
}

// IsTracked reports whether a tracking identifier has been assigned.
func (p *Parcel) IsTracked() bool {
	return p.trackingID != nil
}

// CreatedAt returns the parcel's creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// AssignTracking promotes a provisional parcel to tracked by attaching its
// public identifier. The identifier is immutable: assigning to an already
// tracked parcel fails with ErrTrackingAlreadyAssigned.
func (p *Parcel) AssignTracking(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	if p.trackingID != nil {
		return ErrTrackingAlreadyAssigned
	}

	p.trackingID = &trackingID
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	p.senderID = senderID
	return nil
}

func (p *Parcel) setCountries(pickup string, delivery string) error {
	if pickup == "" {
		return errs.NewValueIsRequiredError("pickupCountry")
	}
	if delivery == "" {
		return errs.NewValueIsRequiredError("deliveryCountry")
	}

	p.pickupCountry = pickup
	p.deliveryCountry = delivery
	return nil
}

func (p *Parcel) setMeasurements(weightKg, lengthCm, widthCm, heightCm float64) error {
	for _, m := range []struct {
		name  string
		value float64
	}{
		{"weight", weightKg},
		{"length", lengthCm},
		{"width", widthCm},
		{"height", heightCm},
	} {
		if m.value <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(m.name+" is invalid",
				fmt.Errorf("%g is not greater than 0", m.value))
		}
	}

	p.weightKg = weightKg
	p.lengthCm = lengthCm
	p.widthCm = widthCm
	p.heightCm = heightCm
	return nil
}
