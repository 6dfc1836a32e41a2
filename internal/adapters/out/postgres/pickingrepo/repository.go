package pickingrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPickingRepository implements PickingRepository using GORM.
type GormPickingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPickingRepository creates a new GORM picking repository.
func NewGormPickingRepository(db *gorm.DB, tracker aggregateTracker) *GormPickingRepository {
	return &GormPickingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new picking task and its lines to the database.
func (r *GormPickingRepository) Add(ctx context.Context, task *picking.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	dto := fromDomain(task)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(task.ID(), task)
	return nil
}

// Update saves an existing picking task, line progress included.
func (r *GormPickingRepository) Update(ctx context.Context, task *picking.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	dto := fromDomain(task)
	result := r.db.WithContext(ctx).Model(&PickingTaskDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":       dto.Status,
			"picker":       dto.Picker,
			"updated_at":   dto.UpdatedAt,
			"completed_at": dto.CompletedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for _, item := range dto.Items {
		if err := r.db.WithContext(ctx).Model(&PickingTaskItemDTO{}).
			Where("id = ?", item.ID).
			Updates(map[string]any{
				"quantity_picked": item.QuantityPicked,
				"recorded":        item.Recorded,
			}).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(task.ID(), task)
	return nil
}

// Get retrieves a picking task with its lines.
func (r *GormPickingRepository) Get(ctx context.Context, id kernel.UUID) (*picking.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PickingTaskDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickingTaskId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForOrder retrieves the picking task generated for an order. Orders have
// at most one task.
func (r *GormPickingRepository) GetForOrder(ctx context.Context, orderID kernel.UUID) (*picking.Task, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PickingTaskDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOpen retrieves every task still pending or in progress, oldest first.
func (r *GormPickingRepository) GetAllOpen(ctx context.Context) ([]*picking.Task, error) {
	var dtos []PickingTaskDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status IN ?", []int{int(picking.StatusPending), int(picking.StatusInProgress)}).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*picking.Task, 0, len(dtos))
	for _, dto := range dtos {
		task, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}
