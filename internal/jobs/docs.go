// Package jobs provides scheduled background tasks for the fulfillment
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the fulfillment service.
//
// # Available Jobs
//
// 1. OrderStatusSnapshotJob - Runs every minute to log the order count per
// status, giving operators a heartbeat view of the pipeline.
// 2. StalePickingWatchdogJob - Runs every minute to flag picking tasks that
// have been open longer than the configured threshold.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statsHandler, openTasksHandler, staleAfter, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs read projections only; they never mutate state. Failures are
// logged and retried on the next tick.
package jobs
