package ports

import (
	"context"
	"time"

	"swiftdrop/internal/core/domain/model/draft"
	"swiftdrop/internal/core/domain/model/kernel"
)

// DraftStore keeps in-progress checkout drafts between steps. Drafts are
// transient: they live until confirmed, removed, or expired by the store.
type DraftStore interface {
	// Put stores a new draft under its tracking id.
	Put(ctx context.Context, d *draft.Draft) error

	// Get retrieves a draft by tracking id.
	// Returns errs.ObjectNotFoundError for missing or expired ids.
	Get(ctx context.Context, id kernel.TrackingID) (*draft.Draft, error)

	// Update stores the current state of an existing draft.
	// Returns errs.ObjectNotFoundError when the draft is gone.
	Update(ctx context.Context, d *draft.Draft) error

	// Remove drops a draft. Removing a missing draft is a no-op.
	Remove(ctx context.Context, id kernel.TrackingID) error

	// ExpireOlderThan drops every draft not updated since the cutoff and
	// returns how many were dropped.
	ExpireOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
