// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// plannerRepository implements the adapter.PlannerRepository interface.
type plannerRepository struct {
	db *gorm.DB
}

// NewPlannerRepository creates a new planner repository instance.
func NewPlannerRepository(db *gorm.DB) adapter.PlannerRepository {
	return &plannerRepository{
		db: db,
	}
}

// Create creates a new planner in the database.
func (r *plannerRepository) Create(ctx context.Context, planner *entity.Planner) error {
	plannerModel := model.PlannerFromEntity(planner)
	result := r.db.WithContext(ctx).Create(plannerModel)
	return result.Error
}

// FindByID retrieves a planner by its ID.
func (r *plannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Planner, error) {
	var plannerModel model.PlannerModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&plannerModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewPlannerError(
				domainerror.ErrCodePlannerNotFound,
				"planner not found",
				domainerror.ErrPlannerNotFound,
			)
		}
		return nil, result.Error
	}
	return plannerModel.ToEntity(), nil
}

// FindByOwner retrieves all planners owned by a user, newest first.
func (r *plannerRepository) FindByOwner(ctx context.Context, ownerUserID uuid.UUID) ([]*entity.Planner, error) {
	var plannerModels []model.PlannerModel
	result := r.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Order("created_at DESC").
		Find(&plannerModels)
	if result.Error != nil {
		return nil, result.Error
	}

	planners := make([]*entity.Planner, len(plannerModels))
	for i, pm := range plannerModels {
		planners[i] = pm.ToEntity()
	}
	return planners, nil
}

// Update updates an existing planner in the database.
func (r *plannerRepository) Update(ctx context.Context, planner *entity.Planner) error {
	plannerModel := model.PlannerFromEntity(planner)
	result := r.db.WithContext(ctx).Save(plannerModel)
	return result.Error
}

// Delete removes a planner from the database.
func (r *plannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PlannerModel{}, "id = ?", id)
	return result.Error
}
