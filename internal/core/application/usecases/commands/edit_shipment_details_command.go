package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/shipment"
	"swiftdrop/internal/pkg/guard"
)

var ErrEditShipmentDetailsCommandIsNotConstructed = errors.New(
	"EditShipmentDetailsCommand must be created via NewEditShipmentDetailsCommand constructor",
)

// EditShipmentDetailsCommand represents a request to update the
// customs-declaration details of a pending shipment, optionally replacing
// its image reference.
type EditShipmentDetailsCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID
	customs    shipment.CustomsDetails
	imageRef   string

	guard guard.ConstructorGuard
}

// NewEditShipmentDetailsCommand creates a command to edit shipment details.
// All customs fields are optional form data; an empty imageRef keeps the
// current image.
func NewEditShipmentDetailsCommand(
	trackingID kernel.TrackingID,
	customs shipment.CustomsDetails,
	imageRef string,
) (EditShipmentDetailsCommand, error) {
	cmd := EditShipmentDetailsCommand{
		customs:  customs,
		imageRef: imageRef,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setTrackingID(trackingID); err != nil {
		return EditShipmentDetailsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditShipmentDetailsCommand) Validate() error {
	return c.guard.Validate(ErrEditShipmentDetailsCommandIsNotConstructed)
}

// TrackingID returns the tracking id of the shipment to edit.
func (c EditShipmentDetailsCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Customs returns the replacement customs-declaration details.
func (c EditShipmentDetailsCommand) Customs() shipment.CustomsDetails {
	return c.customs
}

// ImageRef returns the replacement image reference, possibly empty.
func (c EditShipmentDetailsCommand) ImageRef() string {
	return c.imageRef
}

func (c *EditShipmentDetailsCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	c.trackingID = trackingID
	return nil
}
