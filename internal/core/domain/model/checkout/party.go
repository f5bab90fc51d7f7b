package checkout

import (
	"errors"

	"swiftdrop/internal/pkg/errs"
)

// Party holds the contact and address details of one side of a shipment,
// either the sender or the receiver. It is a plain value object: optional
// fields (company, extra address lines, state) may stay empty, required
// fields are checked by Validate.
type Party struct {
	Name        string
	Company     string
	Address     string
	Address2    string
	Address3    string
	City        string
	State       string
	Email       string
	PhoneType   string
	PhoneCode   string
	PhoneNumber string
}

// Validate checks the fields a shipment cannot be dispatched without.
func (p Party) Validate(side string) error {
	var err error

	if p.Name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError(side+"Name"))
	}
	if p.Address == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError(side+"Address"))
	}
	if p.City == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError(side+"City"))
	}
	if p.Email == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError(side+"Email"))
	}

	return err
}

// IsZero reports whether no field has been filled in yet.
func (p Party) IsZero() bool {
	return p == Party{}
}
