package commands

import (
	"errors"
	"fmt"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var ErrStartCheckoutCommandIsNotConstructed = errors.New(
	"StartCheckoutCommand must be created via NewStartCheckoutCommand constructor",
)

// StartCheckoutCommand represents a request to begin a checkout from an
// accepted quote. Carries the route with zip codes and the parcel
// measurements, which are re-priced inside the handler.
type StartCheckoutCommand struct { //nolint:recvcheck //using for validation
	senderID        kernel.UUID
	pickupCountry   string
	pickupZip       string
	deliveryCountry string
	deliveryZip     string
	weightKg        float64
	lengthCm        float64
	widthCm         float64
	heightCm        float64

	guard guard.ConstructorGuard
}

// NewStartCheckoutCommand creates a command to begin a checkout.
// Zip codes are optional; countries and positive measurements are not.
func NewStartCheckoutCommand(
	senderID kernel.UUID,
	pickupCountry string,
	pickupZip string,
	deliveryCountry string,
	deliveryZip string,
	weightKg float64,
	lengthCm float64,
	widthCm float64,
	heightCm float64,
) (StartCheckoutCommand, error) {
	cmd := StartCheckoutCommand{
		pickupZip:   pickupZip,
		deliveryZip: deliveryZip,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSenderID(senderID),
		cmd.setRoute(pickupCountry, deliveryCountry),
		cmd.setMeasurements(weightKg, lengthCm, widthCm, heightCm),
	); err != nil {
		return StartCheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartCheckoutCommand) Validate() error {
	return c.guard.Validate(ErrStartCheckoutCommandIsNotConstructed)
}

// SenderID returns the identifier of the user starting the checkout.
func (c StartCheckoutCommand) SenderID() kernel.UUID {
	return c.senderID
}

// PickupCountry returns the origin country.
func (c StartCheckoutCommand) PickupCountry() string {
	return c.pickupCountry
}

// PickupZip returns the origin zip code, possibly empty.
func (c StartCheckoutCommand) PickupZip() string {
	return c.pickupZip
}

// DeliveryCountry returns the destination country.
func (c StartCheckoutCommand) DeliveryCountry() string {
	return c.deliveryCountry
}

// DeliveryZip returns the destination zip code, possibly empty.
func (c StartCheckoutCommand) DeliveryZip() string {
	return c.deliveryZip
}

// WeightKg returns the parcel weight in kilograms.
func (c StartCheckoutCommand) WeightKg() float64 {
	return c.weightKg
}

// LengthCm returns the parcel length in centimeters.
func (c StartCheckoutCommand) LengthCm() float64 {
	return c.lengthCm
}

// WidthCm returns the parcel width in centimeters.
func (c StartCheckoutCommand) WidthCm() float64 {
	return c.widthCm
}

// HeightCm returns the parcel height in centimeters.
func (c StartCheckoutCommand) HeightCm() float64 {
	return c.heightCm
}

func (c *StartCheckoutCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}

	c.senderID = senderID
	return nil
}

func (c *StartCheckoutCommand) setRoute(pickup string, delivery string) error {
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

func (c *StartCheckoutCommand) setMeasurements(weightKg, lengthCm, widthCm, heightCm float64) error {
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
