package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderStatusSnapshotJob periodically logs the number of orders in each
// status. The log line doubles as a pipeline heartbeat: a bucket that stops
// draining shows up long before anyone files a ticket.
type OrderStatusSnapshotJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatusSnapshotJob creates a new snapshot job.
func NewOrderStatusSnapshotJob(handler queries.GetOrderStatsQueryHandler, logger *slog.Logger) *OrderStatusSnapshotJob {
	return &OrderStatusSnapshotJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "order_status_snapshot_job"),
	}
}

// Start begins the snapshot job, running every minute.
func (j *OrderStatusSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		stats, statsErr := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
		if statsErr != nil {
			j.logger.ErrorContext(ctx, "Order status snapshot failed", "error", statsErr)
			return
		}

		attrs := make([]any, 0, len(stats)*2)
		for _, bucket := range stats {
			attrs = append(attrs, bucket.Status, bucket.Count)
		}
		j.logger.InfoContext(ctx, "Order status snapshot", attrs...)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status snapshot job started (running every minute)")
	return nil
}

// Stop stops the snapshot job.
func (j *OrderStatusSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order status snapshot job stopped")
}
