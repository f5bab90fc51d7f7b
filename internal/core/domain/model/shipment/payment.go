package shipment

import (
	"errors"
	"fmt"
	"strings"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment factory method.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment stores the card-like fields entered at the payment step. The fields
// are not validated for payment-industry correctness; the record's only
// semantic role is feeding the pluggable authorizer. Payments are deduplicated
// by exact field match: submitting identical card details reuses the existing
// row instead of inserting a duplicate (see Fingerprint).
type Payment struct {
	id             kernel.UUID
	cardholderName string
	cardNumber     string
	cardType       string
	cardBrand      string
	expiryMonth    int
	expiryYear     int
	cvv            string

	isConstructed bool
}

// NewPayment creates a payment record from card-like form fields.
func NewPayment(
	id kernel.UUID,
	cardholderName string,
	cardNumber string,
	cardType string,
	cardBrand string,
	expiryMonth int,
	expiryYear int,
	cvv string,
) (*Payment, error) {
	p := &Payment{
		cardType:  cardType,
		cardBrand: cardBrand,

		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCardholderName(cardholderName),
		p.setCardNumber(cardNumber),
		p.setExpiry(expiryMonth, expiryYear),
		p.setCVV(cvv),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a payment record from persistence.
func RestorePayment(
	id kernel.UUID,
	cardholderName string,
	cardNumber string,
	cardType string,
	cardBrand string,
	expiryMonth int,
	expiryYear int,
	cvv string,
) (*Payment, error) {
	return NewPayment(id, cardholderName, cardNumber, cardType, cardBrand, expiryMonth, expiryYear, cvv)
}

// Validate ensures the Payment was properly constructed through NewPayment.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}

	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// CardholderName returns the name on the card.
func (p *Payment) CardholderName() string {
	return p.cardholderName
}

// CardNumber returns the card number as entered.
func (p *Payment) CardNumber() string {
	return p.cardNumber
}

// CardType returns the card type (credit/debit), if supplied.
func (p *Payment) CardType() string {
	return p.cardType
}

// CardBrand returns the card brand, if supplied.
func (p *Payment) CardBrand() string {
	return p.cardBrand
}

// ExpiryMonth returns the card expiry month (1-12).
func (p *Payment) ExpiryMonth() int {
	return p.expiryMonth
}

// ExpiryYear returns the card expiry year.
func (p *Payment) ExpiryYear() int {
	return p.expiryYear
}

// CVV returns the card verification value as entered.
func (p *Payment) CVV() string {
	return p.cvv
}

// Fingerprint returns a deterministic key over every card field. Two payments
// with the same fingerprint are the same payment for deduplication purposes.
func (p *Payment) Fingerprint() string {
	return strings.Join([]string{
		p.cardholderName,
		p.cardNumber,
		p.cardType,
		p.cardBrand,
		fmt.Sprintf("%02d", p.expiryMonth),
		fmt.Sprintf("%04d", p.expiryYear),
		p.cvv,
	}, "|")
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setCardholderName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("cardholderName")
	}
	p.cardholderName = name
	return nil
}

func (p *Payment) setCardNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("cardNumber")
	}
	p.cardNumber = number
	return nil
}

func (p *Payment) setExpiry(month int, year int) error {
	if month < 1 || month > 12 {
		return errs.NewValueIsOutOfRangeError("expiryMonth", month, 1, 12)
	}
	if year < 1 {
		return errs.NewValueIsInvalidErrorWithCause("expiryYear is invalid",
			fmt.Errorf("%d is not a plausible year", year))
	}

	p.expiryMonth = month
	p.expiryYear = year
	return nil
}

func (p *Payment) setCVV(cvv string) error {
	if len(cvv) < 3 || len(cvv) > 4 {
		return errs.NewValueIsInvalidErrorWithCause("cvv is invalid",
			fmt.Errorf("must be 3 or 4 digits"))
	}
	p.cvv = cvv
	return nil
}
