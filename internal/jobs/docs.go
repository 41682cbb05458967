// Package jobs provides scheduled background tasks for the delivery panel.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the panel needs while open.
//
// # Available Jobs
//
// 1. DeliveryRefreshJob - Runs every 30 seconds to refresh the courier's
// delivery list and surface newly assigned deliveries
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the tracker
//	jobManager := jobs.NewJobManager(tracker, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh job uses the cron expression "*/30 * * * * *", firing every
// 30 seconds. A tick that arrives while a refresh is still in flight is
// dropped by the tracker, so slow backends never pile up requests.
//
// # Error Handling
//
// Background refresh failures are logged and counted; the tracker keeps the
// last good delivery list until a refresh succeeds again.
package jobs
