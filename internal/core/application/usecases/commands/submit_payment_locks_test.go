package commands

import (
	"sync"
	"testing"
	"time"

	"swiftdrop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitPaymentCommandHandler_DraftLocks_ReleasedEntriesAreRemoved(t *testing.T) {
	h := NewSubmitPaymentCommandHandler(nil, nil, nil, nil)
	id := kernel.NewTrackingID()

	lock := h.acquireDraftLock(id)
	assert.Len(t, h.inWork, 1)

	h.releaseDraftLock(id, lock)
	assert.Empty(t, h.inWork)
}

func TestSubmitPaymentCommandHandler_DraftLocks_ConcurrentHoldersShareOneEntry(t *testing.T) {
	h := NewSubmitPaymentCommandHandler(nil, nil, nil, nil)
	id := kernel.NewTrackingID()
	other := kernel.NewTrackingID()

	first := h.acquireDraftLock(id)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		second := h.acquireDraftLock(id)
		h.releaseDraftLock(id, second)
	}()

	otherLock := h.acquireDraftLock(other)
	h.releaseDraftLock(other, otherLock)

	// The waiting goroutine keeps the entry referenced while it blocks.
	require.Eventually(t, func() bool {
		h.mu.Lock()
		defer h.mu.Unlock()
		entry, ok := h.inWork[id.String()]
		return ok && entry.refs == 2
	}, time.Second, time.Millisecond)

	h.releaseDraftLock(id, first)
	wg.Wait()

	h.mu.Lock()
	assert.Empty(t, h.inWork)
	h.mu.Unlock()
}
