package jobs

import (
	"context"
	"log/slog"

	"hortifruti/internal/core/application/tracking"

	"github.com/robfig/cron/v3"
)

// refreshSchedule fires every 30 seconds.
const refreshSchedule = "*/30 * * * * *"

// DeliveryRefreshJob keeps the tracker's delivery list current in the
// background. Overlap protection lives in the tracker itself; a tick that
// lands while a refresh is still running is simply dropped there.
type DeliveryRefreshJob struct {
	tracker *tracking.Tracker
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryRefreshJob creates the 30-second background refresh job.
func NewDeliveryRefreshJob(tracker *tracking.Tracker, logger *slog.Logger) *DeliveryRefreshJob {
	return &DeliveryRefreshJob{
		tracker: tracker,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_refresh_job"),
	}
}

// Start begins the delivery refresh job on its 30-second schedule.
func (j *DeliveryRefreshJob) Start() error {
	_, err := j.cron.AddFunc(refreshSchedule, func() {
		ctx := context.Background()

		// Background refreshes never fail the job; the tracker logs and
		// keeps the last good list.
		if err := j.tracker.Refresh(ctx, true); err != nil {
			j.logger.ErrorContext(ctx, "Delivery refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery refresh job started (running every 30 seconds)")
	return nil
}

// Stop stops the delivery refresh job.
func (j *DeliveryRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery refresh job stopped")
}
