// Package memory provides the in-process implementation of the DraftStore
// port. Drafts are transient checkout state, so a mutex-guarded map with TTL
// expiry is sufficient; a multi-instance deployment would swap this adapter
// for a shared store behind the same port.
package memory

import (
	"context"
	"sync"
	"time"

	"swiftdrop/internal/core/domain/model/draft"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/pkg/errs"
)

// InMemoryDraftStore keeps checkout drafts in a map keyed by tracking id.
type InMemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]*draft.Draft
	ttl    time.Duration
}

// NewInMemoryDraftStore creates a draft store with the given idle TTL.
// A non-positive TTL disables read-side expiry; ExpireOlderThan still works.
func NewInMemoryDraftStore(ttl time.Duration) *InMemoryDraftStore {
	return &InMemoryDraftStore{
		drafts: make(map[string]*draft.Draft),
		ttl:    ttl,
	}
}

// Put stores a new draft under its tracking id.
func (s *InMemoryDraftStore) Put(_ context.Context, d *draft.Draft) error {
	if err := d.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[d.ID().String()] = d
	return nil
}

// Get retrieves a draft by tracking id. A draft idle past the TTL is dropped
// and reported as not found.
func (s *InMemoryDraftStore) Get(_ context.Context, id kernel.TrackingID) (*draft.Draft, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("draft", id.String())
	}

	if s.ttl > 0 && time.Since(d.UpdatedAt()) > s.ttl {
		delete(s.drafts, id.String())
		return nil, errs.NewObjectNotFoundError("draft", id.String())
	}

	return d, nil
}

// Update stores the current state of an existing draft.
func (s *InMemoryDraftStore) Update(_ context.Context, d *draft.Draft) error {
	if err := d.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[d.ID().String()]; !ok {
		return errs.NewObjectNotFoundError("draft", d.ID().String())
	}

	s.drafts[d.ID().String()] = d
	return nil
}

// Remove drops a draft. Removing a missing draft is a no-op.
func (s *InMemoryDraftStore) Remove(_ context.Context, id kernel.TrackingID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, id.String())
	return nil
}

// ExpireOlderThan drops every draft not updated since the cutoff.
func (s *InMemoryDraftStore) ExpireOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for key, d := range s.drafts {
		if d.UpdatedAt().Before(cutoff) {
			delete(s.drafts, key)
			expired++
		}
	}

	return expired, nil
}

// Len reports how many drafts are currently stored.
func (s *InMemoryDraftStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.drafts)
}
