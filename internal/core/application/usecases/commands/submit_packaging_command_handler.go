package commands

import (
	"context"

	"swiftdrop/internal/core/domain/model/draft"
	"swiftdrop/internal/core/ports"
)

// SubmitPackagingCommandHandler records the packaging step on the draft.
// Nothing is written to durable storage until the draft is committed at the
// payment step.
type SubmitPackagingCommandHandler struct {
	draftStore ports.DraftStore
}

// NewSubmitPackagingCommandHandler creates a handler for the packaging step.
func NewSubmitPackagingCommandHandler(draftStore ports.DraftStore) SubmitPackagingCommandHandler {
	return SubmitPackagingCommandHandler{draftStore: draftStore}
}

// Handle stores the packaging payload on the draft and advances its step.
// Fails with a missing-prerequisite error when the contact step was skipped.
func (h *SubmitPackagingCommandHandler) Handle(ctx context.Context, cmd SubmitPackagingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := h.draftStore.Get(ctx, cmd.DraftID())
	if err != nil {
		return err
	}

	if err = d.EnterPackaging(draft.PackagingPayload{
		Type:     cmd.PackagingType(),
		Quantity: cmd.Quantity(),
		WeightKg: cmd.WeightKg(),
		LengthCm: cmd.LengthCm(),
		WidthCm:  cmd.WidthCm(),
		HeightCm: cmd.HeightCm(),
	}); err != nil {
		return err
	}

	return h.draftStore.Update(ctx, d)
}
