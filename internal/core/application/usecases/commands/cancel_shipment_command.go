package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand represents a request to cancel a shipment by its
// tracking id.
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command to cancel a shipment.
func NewCancelShipmentCommand(trackingID kernel.TrackingID) (CancelShipmentCommand, error) {
	cmd := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTrackingID(trackingID); err != nil {
		return CancelShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// TrackingID returns the tracking id of the shipment to cancel.
func (c CancelShipmentCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

func (c *CancelShipmentCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}
