// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// adjustmentRepository implements the adapter.AdjustmentRepository interface.
type adjustmentRepository struct {
	db *gorm.DB
}

// NewAdjustmentRepository creates a new adjustment repository instance.
func NewAdjustmentRepository(db *gorm.DB) adapter.AdjustmentRepository {
	return &adjustmentRepository{
		db: db,
	}
}

// Create creates a new savings adjustment in the database.
func (r *adjustmentRepository) Create(ctx context.Context, adjustment *entity.SavingsAdjustment) error {
	adjustmentModel := model.AdjustmentFromEntity(adjustment)
	result := r.db.WithContext(ctx).Create(adjustmentModel)
	return result.Error
}

// FindByPlanner retrieves all savings adjustments owned by a planner.
func (r *adjustmentRepository) FindByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.SavingsAdjustment, error) {
	var adjustmentModels []model.AdjustmentModel
	result := r.db.WithContext(ctx).
		Where("planner_id = ?", plannerID).
		Order("date ASC, created_at ASC").
		Find(&adjustmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	adjustments := make([]*entity.SavingsAdjustment, len(adjustmentModels))
	for i, am := range adjustmentModels {
		adjustments[i] = am.ToEntity()
	}
	return adjustments, nil
}

// Delete removes a savings adjustment from the database.
func (r *adjustmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.AdjustmentModel{}, "id = ?", id)
	return result.Error
}
