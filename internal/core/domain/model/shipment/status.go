package shipment

import (
	"fmt"

	"swiftdrop/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment after checkout has
// materialized it.
//
// State transitions:
//
//	Pending ──┬──> Successful
//	          │
//	          └──> Canceled
//
// Both Successful and Canceled are terminal for the happy path; cancellation
// is a soft delete and is idempotent (cancelling a Canceled shipment is a
// no-op). Status is a value object that validates transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when a draft is committed.
	// Shipments stay Pending until payment is authorized or they are canceled.
	Pending

	// Successful indicates the payment was authorized and the shipment confirmed.
	Successful

	// Canceled indicates the customer withdrew the shipment. The record is
	// kept (soft delete) so the audit trail and dependent rows stay intact.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Successful: "Successful",
		Canceled:   "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Successful: "Successful",
		Canceled:   "Canceled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Successful, Canceled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// MarkSuccessful transitions the status to Successful.
//
// Valid transitions:
//   - Pending -> Successful (payment authorized)
//
// The transition is irreversible; Successful and Canceled shipments cannot
// be marked successful.
func (s Status) MarkSuccessful() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to mark successful", s.String()))
	}

	return Successful, nil
}

// Cancel transitions the status to Canceled.
//
// Cancellation is idempotent: a Canceled status stays Canceled without error.
// Any non-terminal status moves to Canceled.
func (s Status) Cancel() (Status, error) {
	if s == Canceled {
		return Canceled, nil
	}

	if err := s.Validate(); err != nil {
		return 0, err
	}

	return Canceled, nil
}
