package commands

import (
	"errors"
	"fmt"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

var ErrSubmitPaymentCommandIsNotConstructed = errors.New(
	"SubmitPaymentCommand must be created via NewSubmitPaymentCommand constructor",
)

// SubmitPaymentCommand represents the payment step of a checkout, carrying
// the card-like fields entered on the payment form.
type SubmitPaymentCommand struct { //nolint:recvcheck //using for validation
	draftID        kernel.TrackingID
	cardholderName string
	cardNumber     string
	cardType       string
	cardBrand      string
	expiryMonth    int
	expiryYear     int
	cvv            string

	guard guard.ConstructorGuard
}

// NewSubmitPaymentCommand creates a command for the payment step.
// Cardholder name and number are required; the expiry month must be 1-12 and
// the CVV 3 or 4 characters. Card type and brand are optional.
func NewSubmitPaymentCommand(
	draftID kernel.TrackingID,
	cardholderName string,
	cardNumber string,
	cardType string,
	cardBrand string,
	expiryMonth int,
	expiryYear int,
	cvv string,
) (SubmitPaymentCommand, error) {
	cmd := SubmitPaymentCommand{
		cardType:  cardType,
		cardBrand: cardBrand,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDraftID(draftID),
		cmd.setCard(cardholderName, cardNumber),
		cmd.setExpiry(expiryMonth, expiryYear),
		cmd.setCVV(cvv),
	); err != nil {
		return SubmitPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPaymentCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPaymentCommandIsNotConstructed)
}

// DraftID returns the draft the step belongs to.
func (c SubmitPaymentCommand) DraftID() kernel.TrackingID {
	return c.draftID
}

// CardholderName returns the name on the card.
func (c SubmitPaymentCommand) CardholderName() string {
	return c.cardholderName
}

// CardNumber returns the card number as entered.
func (c SubmitPaymentCommand) CardNumber() string {
	return c.cardNumber
}

// CardType returns the optional card type.
func (c SubmitPaymentCommand) CardType() string {
	return c.cardType
}

// CardBrand returns the optional card brand.
func (c SubmitPaymentCommand) CardBrand() string {
	return c.cardBrand
}

// ExpiryMonth returns the card expiry month.
func (c SubmitPaymentCommand) ExpiryMonth() int {
	return c.expiryMonth
}

// ExpiryYear returns the card expiry year.
func (c SubmitPaymentCommand) ExpiryYear() int {
	return c.expiryYear
}

// CVV returns the card verification value.
func (c SubmitPaymentCommand) CVV() string {
	return c.cvv
}

func (c *SubmitPaymentCommand) setDraftID(draftID kernel.TrackingID) error {
	if err := draftID.Validate(); err != nil {
		return err
	}

	c.draftID = draftID
	return nil
}

func (c *SubmitPaymentCommand) setCard(cardholderName string, cardNumber string) error {
	if cardholderName == "" {
		return errs.NewValueIsRequiredError("cardholderName")
	}
	if cardNumber == "" {
		return errs.NewValueIsRequiredError("cardNumber")
	}

	c.cardholderName = cardholderName
	c.cardNumber = cardNumber
	return nil
}

func (c *SubmitPaymentCommand) setExpiry(month int, year int) error {
	if month < 1 || month > 12 {
		return errs.NewValueIsOutOfRangeError("expiryMonth", month, 1, 12)
	}
	if year < 1 {
		return errs.NewValueIsInvalidErrorWithCause("expiryYear is invalid",
			fmt.Errorf("%d is not a plausible year", year))
	}

	c.expiryMonth = month
	c.expiryYear = year
	return nil
}

func (c *SubmitPaymentCommand) setCVV(cvv string) error {
	if len(cvv) < 3 || len(cvv) > 4 {
		return errs.NewValueIsInvalidErrorWithCause("cvv is invalid",
			fmt.Errorf("must be 3 or 4 digits"))
	}

	c.cvv = cvv
	return nil
}
