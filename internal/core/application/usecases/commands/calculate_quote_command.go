package commands

import (
	"errors"
	"fmt"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var ErrCalculateQuoteCommandIsNotConstructed = errors.New(
	"CalculateQuoteCommand must be created via NewCalculateQuoteCommand constructor",
)

// CalculateQuoteCommand represents a request to price a prospective shipment.
// Encapsulates the route and the parcel measurements entered on the quote form.
type CalculateQuoteCommand struct { //nolint:recvcheck //using for validation
	senderID        kernel.UUID
	pickupCountry   string
	deliveryCountry string
	weightKg        float64
	lengthCm        float64
	widthCm         float64
	heightCm        float64

	guard guard.ConstructorGuard
}

// NewCalculateQuoteCommand creates a command to price a parcel on a route.
// Validates that both countries are present and all measurements are positive.
func NewCalculateQuoteCommand(
	senderID kernel.UUID,
	pickupCountry string,
	deliveryCountry string,
	weightKg float64,
	lengthCm float64,
	widthCm float64,
	heightCm float64,
) (CalculateQuoteCommand, error) {
	cmd := CalculateQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSenderID(senderID),
		cmd.setRoute(pickupCountry, deliveryCountry),
		cmd.setMeasurements(weightKg, lengthCm, widthCm, heightCm),
	); err != nil {
		return CalculateQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CalculateQuoteCommand) Validate() error {
	return c.guard.Validate(ErrCalculateQuoteCommandIsNotConstructed)
}

// SenderID returns the identifier of the user requesting the quote.
func (c CalculateQuoteCommand) SenderID() kernel.UUID {
	return c.senderID
}

// PickupCountry returns the origin country.
func (c CalculateQuoteCommand) PickupCountry() string {
	return c.pickupCountry
}

// DeliveryCountry returns the destination country.
func (c CalculateQuoteCommand) DeliveryCountry() string {
	return c.deliveryCountry
}

// WeightKg returns the parcel weight in kilograms.
func (c CalculateQuoteCommand) WeightKg() float64 {
	return c.weightKg
}

// LengthCm returns the parcel length in centimeters.
func (c CalculateQuoteCommand) LengthCm() float64 {
	return c.lengthCm
}

// WidthCm returns the parcel width in centimeters.
func (c CalculateQuoteCommand) WidthCm() float64 {
	return c.widthCm
}

// HeightCm returns the parcel height in centimeters.
func (c CalculateQuoteCommand) HeightCm() float64 {
	return c.heightCm
}

func (c *CalculateQuoteCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *CalculateQuoteCommand) setRoute(pickup string, delivery string) error {
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

func (c *CalculateQuoteCommand) setMeasurements(weightKg, lengthCm, widthCm, heightCm float64) error {
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
