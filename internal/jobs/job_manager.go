package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	courierRevalidationJob *CourierRevalidationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up the job execution.
func NewJobManager(
	pendingCouriersHandler PendingCouriersHandler,
	revalidateCourierHandler RevalidateCourierHandler,
	revalidationSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		courierRevalidationJob: NewCourierRevalidationJob(
			pendingCouriersHandler,
			revalidateCourierHandler,
			revalidationSchedule,
			logger,
		),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.courierRevalidationJob.Start(); err != nil {
		return fmt.Errorf("failed to start courier revalidation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.courierRevalidationJob.Stop()
}
