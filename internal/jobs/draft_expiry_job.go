package jobs

import (
	"context"
	"log/slog"
	"time"

	"swiftdrop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DraftExpiryJob drops checkout drafts that sat idle longer than the
// configured TTL. Runs every minute; the draft store stays bounded even when
// customers abandon checkouts mid-flow.
type DraftExpiryJob struct {
	store  ports.DraftStore
	ttl    time.Duration
	cron   *cron.Cron
	logger *slog.Logger
}

// NewDraftExpiryJob creates a job expiring drafts idle longer than ttl.
func NewDraftExpiryJob(store ports.DraftStore, ttl time.Duration, logger *slog.Logger) *DraftExpiryJob {
	return &DraftExpiryJob{
		store:  store,
		ttl:    ttl,
		cron:   cron.New(),
		logger: logger.With("component", "draft_expiry_job"),
	}
}

// Start begins the draft expiry job to run every minute.
func (j *DraftExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().Add(-j.ttl)

		expired, err := j.store.ExpireOlderThan(ctx, cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Draft expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired idle checkout drafts", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Draft expiry job started (running every minute)")
	return nil
}

// Stop stops the draft expiry job.
func (j *DraftExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Draft expiry job stopped")
}
