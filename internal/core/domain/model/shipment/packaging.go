package shipment

import (
	"errors"
	"fmt"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

// ErrPackagingIsNotConstructed is returned when a Packaging instance was not
// created through the NewPackaging factory method.
var ErrPackagingIsNotConstructed = errors.New("Packaging must be created via NewPackaging constructor")

// Packaging describes how a shipment is packed: the packaging type chosen by
// the customer plus per-unit count and measurements. A packaging record is
// exclusive to one shipment and is created at the packaging step.
type Packaging struct {
	id            kernel.UUID
	packagingType string
	quantity      int
	weightKg      float64
	lengthCm      float64
	widthCm       float64
	heightCm      float64

	isConstructed bool
}

// NewPackaging creates a packaging record. The type is required, the quantity
// must be at least 1, and all measurements must be strictly positive.
func NewPackaging(
	id kernel.UUID,
	packagingType string,
	quantity int,
	weightKg float64,
	lengthCm float64,
	widthCm float64,
	heightCm float64,
) (*Packaging, error) {
	p := &Packaging{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setType(packagingType),
		p.setQuantity(quantity),
		p.setMeasurements(weightKg, lengthCm, widthCm, heightCm),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePackaging reconstructs a packaging record from persistence.
func RestorePackaging(
	id kernel.UUID,
	packagingType string,
	quantity int,
	weightKg float64,
	lengthCm float64,
	widthCm float64,
	heightCm float64,
) (*Packaging, error) {
	return NewPackaging(id, packagingType, quantity, weightKg, lengthCm, widthCm, heightCm)
}

// Validate ensures the Packaging was properly constructed through NewPackaging.
func (p *Packaging) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackagingIsNotConstructed
	}

	return nil
}

// ID returns the packaging's unique identifier.
func (p *Packaging) ID() kernel.UUID {
	return p.id
}

// Type returns the chosen packaging type.
func (p *Packaging) Type() string {
	return p.packagingType
}

// Quantity returns the number of packaging units.
func (p *Packaging) Quantity() int {
	return p.quantity
}

// WeightKg returns the per-unit weight in kilograms.
func (p *Packaging) WeightKg() float64 {
	return p.weightKg
}

// LengthCm returns the per-unit length in centimeters.
func (p *Packaging) LengthCm() float64 {
	return p.lengthCm
}

// WidthCm returns the per-unit width in centimeters.
func (p *Packaging) WidthCm() float64 {
	return p.widthCm
}

// HeightCm returns the per-unit height in centimeters.
func (p *Packaging) HeightCm() float64 {
	return p.heightCm
}

func (p *Packaging) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Packaging) setType(packagingType string) error {
	if packagingType == "" {
		return errs.NewValueIsRequiredError("packagingType")
	}
	p.packagingType = packagingType
	return nil
}

func (p *Packaging) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	p.quantity = quantity
	return nil
}

func (p *Packaging) setMeasurements(weightKg, lengthCm, widthCm, heightCm float64) error {
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
