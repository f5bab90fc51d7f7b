package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"swiftdrop/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	draftExpiryJob *DraftExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(draftStore ports.DraftStore, draftTTL time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		draftExpiryJob: NewDraftExpiryJob(draftStore, draftTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.draftExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start draft expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.draftExpiryJob.Stop()
}
