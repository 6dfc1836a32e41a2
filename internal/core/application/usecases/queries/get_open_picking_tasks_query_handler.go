package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenPickingTasksQueryHandler reads the open picking work queue with raw
// SQL, joining the order number in for display.
type GetOpenPickingTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenPickingTasksQueryHandler creates a handler for work queue queries.
func NewGetOpenPickingTasksQueryHandler(db *gorm.DB) GetOpenPickingTasksQueryHandler {
	return GetOpenPickingTasksQueryHandler{db: db}
}

// Handle executes the query. Oldest tasks come first so the queue drains in
// arrival order.
func (h GetOpenPickingTasksQueryHandler) Handle(
	ctx context.Context,
	query GetOpenPickingTasksQuery,
) ([]GetOpenPickingTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.number,
			o.number,
			t.status,
			t.picker,
			count(i.id),
			t.created_at
		FROM picking_tasks t
		JOIN orders o ON o.id = t.order_id
		LEFT JOIN picking_task_items i ON i.task_id = t.id
		WHERE t.status IN (?, ?)
		GROUP BY t.id, t.number, o.number, t.status, t.picker, t.created_at
		ORDER BY t.created_at
	`, int(picking.StatusPending), int(picking.StatusInProgress)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]GetOpenPickingTasksQueryResponse, 0)
	for rows.Next() {
		var task GetOpenPickingTasksQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(&id, &task.Number, &task.OrderNumber, &status,
			&task.Picker, &task.LineCount, &task.CreatedAt)
		if err != nil {
			return nil, err
		}

		task.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		task.Status = picking.Status(status).String()
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
