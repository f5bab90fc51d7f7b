package draft

import (
	"errors"
	"fmt"

	"swiftdrop/internal/pkg/errs"
)

// ErrMissingPrerequisite is the sentinel error wrapped by
// MissingPrerequisiteError.
var ErrMissingPrerequisite = errors.New("checkout step prerequisite is missing")

// Step is the checkout progress marker. Steps advance strictly in order:
// Quoted -> ContactEntered -> Packaged -> Paid -> Confirmed.
type Step int

const (
	// Unknown is the zero value and is never a valid step.
	Unknown Step = iota
	// Quoted means the quote was accepted and the draft was created.
	Quoted
	// ContactEntered means sender and receiver details were submitted.
	ContactEntered
	// Packaged means the packaging choice was submitted.
	Packaged
	// Paid means payment details were submitted and the draft was committed.
	Paid
	// Confirmed means the payment was authorized. Terminal.
	Confirmed
)

func getStepStrings() map[Step]string {
	return map[Step]string{
		Unknown:        "Unknown",
		Quoted:         "Quoted",
		ContactEntered: "ContactEntered",
		Packaged:       "Packaged",
		Paid:           "Paid",
		Confirmed:      "Confirmed",
	}
}

func getValidStepStrings() map[Step]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Step]string{
		Quoted:         "Quoted",
		ContactEntered: "ContactEntered",
		Packaged:       "Packaged",
		Paid:           "Paid",
		Confirmed:      "Confirmed",
	}
}

// Validate checks if the Step value is valid.
// Valid steps are: Quoted, ContactEntered, Packaged, Paid, Confirmed.
func (s Step) Validate() error {
	if _, ok := getValidStepStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("step is invalid",
			fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}

// String returns the human-readable name of the step.
// Implements the fmt.Stringer interface and is safe on any value.
func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// MissingPrerequisiteError reports an attempt to enter a checkout step before
// completing the step it depends on.
type MissingPrerequisiteError struct {
	MissingStep Step
}

// NewMissingPrerequisiteError creates a MissingPrerequisiteError naming the
// step that must be completed first.
func NewMissingPrerequisiteError(missing Step) *MissingPrerequisiteError {
	return &MissingPrerequisiteError{MissingStep: missing}
}

// Error implements the error interface.
func (e *MissingPrerequisiteError) Error() string {
	return fmt.Sprintf("%s: complete the %s step first", ErrMissingPrerequisite, e.MissingStep)
}

// Unwrap supports errors.Is checks against ErrMissingPrerequisite.
func (e *MissingPrerequisiteError) Unwrap() error {
	return ErrMissingPrerequisite
}
