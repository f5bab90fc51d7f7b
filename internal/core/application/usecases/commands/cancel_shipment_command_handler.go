package commands

import (
	"context"

	"swiftdrop/internal/core/domain/model/shipment"
)

// CancelShipmentCommandHandler soft-deletes a shipment: the row is kept and
// only its status moves to Canceled. Cancelling an already canceled shipment
// is a no-op returning the current state.
type CancelShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCancelShipmentCommandHandler creates a handler for shipment cancellation.
func NewCancelShipmentCommandHandler(uowFactory ShipmentUoWFactory) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{uowFactory: uowFactory}
}

// Handle cancels the shipment and returns its resulting status.
func (h *CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) (shipment.Status, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := uow.ShipmentRepository().GetByTrackingID(ctx, cmd.TrackingID())
	if err != nil {
		return shipment.Unknown, err
	}

	status, err := s.Cancel()
	if err != nil {
		return shipment.Unknown, err
	}

	if err = uow.ShipmentRepository().Update(ctx, s); err != nil {
		return shipment.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.Unknown, err
	}

	return status, nil
}
