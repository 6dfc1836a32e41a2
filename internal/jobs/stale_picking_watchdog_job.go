package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StalePickingWatchdogJob periodically flags picking tasks that have been
// open longer than the configured threshold. A stale task usually means a
// picker walked away mid-task or a short pick was never confirmed.
type StalePickingWatchdogJob struct {
	handler    queries.GetOpenPickingTasksQueryHandler
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStalePickingWatchdogJob creates a new watchdog job.
func NewStalePickingWatchdogJob(
	handler queries.GetOpenPickingTasksQueryHandler,
	staleAfter time.Duration,
	logger *slog.Logger,
) *StalePickingWatchdogJob {
	return &StalePickingWatchdogJob{
		handler:    handler,
		staleAfter: staleAfter,
		cron:       cron.New(),
		logger:     logger.With("component", "stale_picking_watchdog_job"),
	}
}

// Start begins the watchdog job, running every minute.
func (j *StalePickingWatchdogJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		tasks, tasksErr := j.handler.Handle(ctx, queries.NewGetOpenPickingTasksQuery())
		if tasksErr != nil {
			j.logger.ErrorContext(ctx, "Stale picking watchdog failed", "error", tasksErr)
			return
		}

		cutoff := time.Now().Add(-j.staleAfter)
		for _, task := range tasks {
			if task.CreatedAt.Before(cutoff) {
				j.logger.WarnContext(ctx, "Picking task is stale",
					"task", task.Number,
					"order", task.OrderNumber,
					"status", task.Status,
					"picker", task.Picker,
					"age", time.Since(task.CreatedAt).Round(time.Minute).String(),
				)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale picking watchdog job started (running every minute)")
	return nil
}

// Stop stops the watchdog job.
func (j *StalePickingWatchdogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale picking watchdog job stopped")
}
