package packingrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPackingRepository implements PackingRepository using GORM.
type GormPackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPackingRepository creates a new GORM packing repository.
func NewGormPackingRepository(db *gorm.DB, tracker aggregateTracker) *GormPackingRepository {
	return &GormPackingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new packing task to the database.
func (r *GormPackingRepository) Add(ctx context.Context, task *packing.Task) error {
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

// Update saves an existing packing task. Packages are opened and filled
// continuously during packing, so the package tree is upserted whole.
func (r *GormPackingRepository) Update(ctx context.Context, task *packing.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	dto := fromDomain(task)
	result := r.db.WithContext(ctx).Model(&PackingTaskDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":       dto.Status,
			"updated_at":   dto.UpdatedAt,
			"completed_at": dto.CompletedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for _, pkg := range dto.Packages {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).
			Omit("Items").
			Create(&pkg).Error; err != nil {
			return err
		}
		for _, item := range pkg.Items {
			if err := r.db.WithContext(ctx).
				Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "id"}},
					UpdateAll: true,
				}).
				Create(&item).Error; err != nil {
				return err
			}
		}
	}

	r.tracker.TrackAggregate(task.ID(), task)
	return nil
}

// Get retrieves a packing task with its packages and their contents.
func (r *GormPackingRepository) Get(ctx context.Context, id kernel.UUID) (*packing.Task, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackingTaskDTO
	err := r.db.WithContext(ctx).
		Preload("Packages.Items").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("packingTaskId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForOrder retrieves the packing task created for an order. Orders have
// at most one task.
func (r *GormPackingRepository) GetForOrder(ctx context.Context, orderID kernel.UUID) (*packing.Task, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PackingTaskDTO
	err := r.db.WithContext(ctx).
		Preload("Packages.Items").
		First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
