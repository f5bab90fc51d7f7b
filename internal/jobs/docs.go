// Package jobs provides scheduled background tasks for the shipment service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping.
//
// # Available Jobs
//
// 1. DraftExpiryJob - Runs every minute to drop checkout drafts idle longer
// than the configured TTL, bounding draft-store memory.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(draftStore, draftTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiry job logs failures and keeps running; a single failed sweep only
// delays expiry until the next minute.
package jobs
