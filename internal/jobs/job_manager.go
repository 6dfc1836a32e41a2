package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotJob *OrderStatusSnapshotJob
	watchdogJob *StalePickingWatchdogJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	statsHandler queries.GetOrderStatsQueryHandler,
	openTasksHandler queries.GetOpenPickingTasksQueryHandler,
	staleAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		snapshotJob: NewOrderStatusSnapshotJob(statsHandler, logger),
		watchdogJob: NewStalePickingWatchdogJob(openTasksHandler, staleAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start order status snapshot job: %w", err)
	}

	if err := jm.watchdogJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.snapshotJob.Stop()
		return fmt.Errorf("failed to start stale picking watchdog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.snapshotJob.Stop()
	jm.watchdogJob.Stop()
}
