package commands

import (
	"context"
)

// EditShipmentDetailsCommandHandler updates customs-declaration details on a
// pending shipment. Shipments that left the Pending status reject the edit.
type EditShipmentDetailsCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewEditShipmentDetailsCommandHandler creates a handler for shipment detail edits.
func NewEditShipmentDetailsCommandHandler(uowFactory ShipmentUoWFactory) EditShipmentDetailsCommandHandler {
	return EditShipmentDetailsCommandHandler{uowFactory: uowFactory}
}

// Handle replaces the shipment's customs details and image reference.
func (h *EditShipmentDetailsCommandHandler) Handle(ctx context.Context, cmd EditShipmentDetailsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := uow.ShipmentRepository().GetByTrackingID(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	if err = s.UpdateDetails(cmd.Customs()); err != nil {
		return err
	}
	if ref := cmd.ImageRef(); ref != "" {
		s.SetImage(ref)
	}

	if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
