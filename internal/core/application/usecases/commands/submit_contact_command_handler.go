package commands

import (
	"context"
	"errors"
	"log/slog"

	"swiftdrop/internal/core/domain/model/checkout"
	"swiftdrop/internal/core/domain/model/draft"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/pkg/errs"
)

// SubmitContactCommandHandler records the contact-details step: it sweeps
// provisional parcels, completes the checkout with both parties, refreshes the
// user's address-book contact, and advances the draft.
type SubmitContactCommandHandler struct {
	uowFactory ContactUoWFactory
	draftStore ports.DraftStore
	logger     *slog.Logger
}

// NewSubmitContactCommandHandler creates a handler for the contact step.
func NewSubmitContactCommandHandler(
	uowFactory ContactUoWFactory,
	draftStore ports.DraftStore,
	logger *slog.Logger,
) SubmitContactCommandHandler {
	return SubmitContactCommandHandler{
		uowFactory: uowFactory,
		draftStore: draftStore,
		logger:     logger,
	}
}

// Handle processes the contact-details step for a draft.
func (h *SubmitContactCommandHandler) Handle(ctx context.Context, cmd SubmitContactCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := h.draftStore.Get(ctx, cmd.DraftID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	swept, err := uow.ParcelRepository().DeleteProvisional(ctx)
	if err != nil {
		return err
	}
	if swept > 0 {
		h.logger.InfoContext(ctx, "swept provisional parcels", slog.Int64("count", swept))
	}

	co, err := uow.CheckoutRepository().Get(ctx, d.CheckoutID())
	if err != nil {
		return err
	}

	if err = co.Complete(cmd.Sender(), cmd.Receiver(), cmd.VatTaxID()); err != nil {
		return err
	}
	if err = uow.CheckoutRepository().Update(ctx, co); err != nil {
		return err
	}

	if err = h.refreshContact(ctx, uow.ContactRepository(), d.SenderID(), cmd, co); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = d.EnterContact(draft.ContactPayload{
		Sender:   cmd.Sender(),
		Receiver: cmd.Receiver(),
		VatTaxID: cmd.VatTaxID(),
	}); err != nil {
		return err
	}

	return h.draftStore.Update(ctx, d)
}

// refreshContact keeps the per-user prefill cache current: the record keyed by
// user and sender name is overwritten, or created on first use.
func (h *SubmitContactCommandHandler) refreshContact(
	ctx context.Context,
	contacts ports.ContactRepository,
	userID kernel.UUID,
	cmd SubmitContactCommand,
	co *checkout.Checkout,
) error {
	existing, err := contacts.GetByUserAndName(ctx, userID, cmd.Sender().Name)

	var notFound *errs.ObjectNotFoundError
	switch {
	case err == nil:
		existing.Refresh(cmd.Sender(), co.PickupCountry(), co.PickupZip())
		return contacts.Update(ctx, existing)
	case errors.As(err, &notFound):
		fresh, err := checkout.NewContact(kernel.NewUUID(), userID, cmd.Sender(), co.PickupCountry(), co.PickupZip())
		if err != nil {
			return err
		}
		return contacts.Add(ctx, fresh)
	default:
		return err
	}
}
