package jobs

import (
	"fmt"
	"log/slog"

	"hortifruti/internal/core/application/tracking"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryRefreshJob *DeliveryRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(tracker *tracking.Tracker, logger *slog.Logger) *JobManager {
	return &JobManager{
		deliveryRefreshJob: NewDeliveryRefreshJob(tracker, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryRefreshJob.Stop()
}
