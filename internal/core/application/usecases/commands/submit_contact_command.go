package commands

import (
	"errors"

	"swiftdrop/internal/core/domain/model/checkout"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/guard"
)

var ErrSubmitContactCommandIsNotConstructed = errors.New(
	"SubmitContactCommand must be created via NewSubmitContactCommand constructor",
)

// SubmitContactCommand represents the contact-details step of a checkout:
// sender and receiver parties plus an optional VAT tax id.
type SubmitContactCommand struct { //nolint:recvcheck //using for validation
	draftID  kernel.TrackingID
	sender   checkout.Party
	receiver checkout.Party
	vatTaxID string

	guard guard.ConstructorGuard
}

// NewSubmitContactCommand creates a command for the contact-details step.
// Both parties must carry their required fields.
func NewSubmitContactCommand(
	draftID kernel.TrackingID,
	sender checkout.Party,
	receiver checkout.Party,
	vatTaxID string,
) (SubmitContactCommand, error) {
	cmd := SubmitContactCommand{
		sender:   sender,
		receiver: receiver,
		vatTaxID: vatTaxID,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDraftID(draftID),
		sender.Validate("sender"),
		receiver.Validate("receiver"),
	); err != nil {
		return SubmitContactCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitContactCommand) Validate() error {
	return c.guard.Validate(ErrSubmitContactCommandIsNotConstructed)
}

// DraftID returns the draft the step belongs to.
func (c SubmitContactCommand) DraftID() kernel.TrackingID {
	return c.draftID
}

// Sender returns the sender party details.
func (c SubmitContactCommand) Sender() checkout.Party {
	return c.sender
}

// Receiver returns the receiver party details.
func (c SubmitContactCommand) Receiver() checkout.Party {
	return c.receiver
}

// VatTaxID returns the optional VAT tax id.
func (c SubmitContactCommand) VatTaxID() string {
	return c.vatTaxID
}

func (c *SubmitContactCommand) setDraftID(draftID kernel.TrackingID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}

	c.draftID = draftID
	return nil
}
