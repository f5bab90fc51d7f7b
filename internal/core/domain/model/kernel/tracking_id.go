package kernel

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

const (
	// TrackingIDPrefix is the brand prefix carried by every public tracking identifier.
	TrackingIDPrefix = "gbw"
	// trackingIDHexLen is the number of random hex characters after the prefix.
	trackingIDHexLen = 8
)

// ErrTrackingIDIsNotConstructed indicates that a TrackingID was not created through
// NewTrackingID or TrackingIDFromString.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking ID must be created via NewTrackingID or TrackingIDFromString")

// TrackingID is the human-facing package identifier printed on labels and used
// for tracking lookups, of the form "gbw" followed by 8 lowercase hex characters
// (e.g. "gbw3fa9c01d"). It is a value object: immutable once constructed and
// globally unique across packages.
//
// Uniqueness is not guaranteed by the generator alone; callers allocating a new
// identifier must check it against the parcel repository and regenerate on
// collision.
type TrackingID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewTrackingID generates a fresh random tracking identifier.
func NewTrackingID() TrackingID {
	raw := make([]byte, trackingIDHexLen/2)
	_, _ = rand.Read(raw)

	return TrackingID{
		value: TrackingIDPrefix + hex.EncodeToString(raw),
		guard: guard.NewConstructorGuard(),
	}
}

// TrackingIDFromString parses a tracking identifier from its string form.
// Returns a validation error unless the input is the brand prefix followed by
// exactly 8 lowercase hex characters.
func TrackingIDFromString(s string) (TrackingID, error) {
	if !strings.HasPrefix(s, TrackingIDPrefix) {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingID",
			fmt.Errorf("%q does not start with %q", s, TrackingIDPrefix))
	}

	suffix := strings.TrimPrefix(s, TrackingIDPrefix)
	if len(suffix) != trackingIDHexLen {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingID",
			fmt.Errorf("%q must carry %d hex characters after the prefix", s, trackingIDHexLen))
	}

	if decoded, err := hex.DecodeString(suffix); err != nil || strings.ToLower(suffix) != suffix {
		return TrackingID{}, errs.NewValueIsInvalidErrorWithCause("trackingID",
			fmt.Errorf("%q is not lowercase hex", s))
	} else if len(decoded) != trackingIDHexLen/2 {
		return TrackingID{}, errs.NewValueIsInvalidError("trackingID")
	}

	return TrackingID{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the identifier as printed on labels.
// Implements the fmt.Stringer interface.
func (t TrackingID) String() string {
	return t.value
}

// IsEqual compares two tracking identifiers for equality.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.value == other.value
}

// Validate checks that the TrackingID was created through a constructor.
func (t TrackingID) Validate() error {
	return t.guard.Validate(ErrTrackingIDIsNotConstructed)
}
