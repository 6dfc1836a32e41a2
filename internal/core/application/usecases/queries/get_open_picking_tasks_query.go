package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOpenPickingTasksQueryIsNotConstructed = errors.New(
		"GetOpenPickingTasksQuery must be created via NewGetOpenPickingTasksQuery constructor",
	)
)

// GetOpenPickingTasksQuery retrieves every picking task that is pending or
// in progress, for the warehouse floor work queue.
type GetOpenPickingTasksQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenPickingTasksQuery creates a parameterless work queue query.
func NewGetOpenPickingTasksQuery() GetOpenPickingTasksQuery {
	return GetOpenPickingTasksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenPickingTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenPickingTasksQueryIsNotConstructed)
}

// GetOpenPickingTasksQueryResponse is one open task in the work queue.
type GetOpenPickingTasksQueryResponse struct {
	ID          kernel.UUID
	Number      string
	OrderNumber string
	Status      string
	Picker      string
	LineCount   int
	CreatedAt   time.Time
}
