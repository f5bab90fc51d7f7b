package ports

import (
	"context"

	"swiftdrop/internal/core/domain/model/checkout"
	"swiftdrop/internal/core/domain/model/kernel"
)

// CheckoutRepository defines the persistence contract for checkout records.
// A checkout is created partial (routing only) at checkout start and completed
// with sender and receiver details at the contact step.
type CheckoutRepository interface {
	// Add persists a new checkout record to storage.
	Add(ctx context.Context, entity *checkout.Checkout) error

	// Update persists changes to an existing checkout record.
	Update(ctx context.Context, entity *checkout.Checkout) error

	// Get retrieves a checkout record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*checkout.Checkout, error)
}

// ContactRepository defines the persistence contract for address-book contact
// records. Contacts are prefill caches keyed by user and sender name; each
// completed contact step refreshes the matching record or creates it.
type ContactRepository interface {
	// Add persists a new contact record to storage.
	Add(ctx context.Context, entity *checkout.Contact) error

	// Update persists changes to an existing contact record.
	Update(ctx context.Context, entity *checkout.Contact) error

	// GetByUserAndName retrieves the contact record for a user and sender
	// name. Returns errs.ObjectNotFoundError when no record exists.
	GetByUserAndName(ctx context.Context, userID kernel.UUID, name string) (*checkout.Contact, error)
}
