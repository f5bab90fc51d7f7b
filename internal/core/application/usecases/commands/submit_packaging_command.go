package commands

import (
	"errors"
	"fmt"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var ErrSubmitPackagingCommandIsNotConstructed = errors.New(
	"SubmitPackagingCommand must be created via NewSubmitPackagingCommand constructor",
)

// SubmitPackagingCommand represents the packaging step of a checkout.
type SubmitPackagingCommand struct { //nolint:recvcheck //using for validation
	draftID       kernel.TrackingID
	packagingType string
	quantity      int
	weightKg      float64
	lengthCm      float64
	widthCm       float64
	heightCm      float64

	guard guard.ConstructorGuard
}

// NewSubmitPackagingCommand creates a command for the packaging step.
// The type is required, the quantity must be at least 1, and all measurements
// must be strictly positive.
func NewSubmitPackagingCommand(
	draftID kernel.TrackingID,
	packagingType string,
	quantity int,
	weightKg float64,
	lengthCm float64,
	widthCm float64,
	heightCm float64,
) (SubmitPackagingCommand, error) {
	cmd := SubmitPackagingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDraftID(draftID),
		cmd.setType(packagingType),
		cmd.setQuantity(quantity),
		cmd.setMeasurements(weightKg, lengthCm, widthCm, heightCm),
	); err != nil {
		return SubmitPackagingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPackagingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPackagingCommandIsNotConstructed)
}

// DraftID returns the draft the step belongs to.
func (c SubmitPackagingCommand) DraftID() kernel.TrackingID {
	return c.draftID
}

// PackagingType returns the chosen packaging type.
func (c SubmitPackagingCommand) PackagingType() string {
	return c.packagingType
}

// Quantity returns the number of packaging units.
func (c SubmitPackagingCommand) Quantity() int {
	return c.quantity
}

// WeightKg returns the per-unit weight in kilograms.
func (c SubmitPackagingCommand) WeightKg() float64 {
	return c.weightKg
}

// LengthCm returns the per-unit length in centimeters.
func (c SubmitPackagingCommand) LengthCm() float64 {
	return c.lengthCm
}

// WidthCm returns the per-unit width in centimeters.
func (c SubmitPackagingCommand) WidthCm() float64 {
	return c.widthCm
}

// HeightCm returns the per-unit height in centimeters.
func (c SubmitPackagingCommand) HeightCm() float64 {
	return c.heightCm
}

func (c *SubmitPackagingCommand) setDraftID(draftID kernel.TrackingID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}

	c.draftID = draftID
	return nil
}

func (c *SubmitPackagingCommand) setType(packagingType string) error {
	if packagingType == "" {
		return errs.NewValueIsRequiredError("packagingType")
	}

	c.packagingType = packagingType
	return nil
}

func (c *SubmitPackagingCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not at least 1", quantity))
	}

	c.quantity = quantity
	return nil
}

func (c *SubmitPackagingCommand) setMeasurements(weightKg, lengthCm, widthCm, heightCm float64) error {
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

	c.weightKg = weightKg
	c.lengthCm = lengthCm
	c.widthCm = widthCm
	c.heightCm = heightCm
	return nil
}
