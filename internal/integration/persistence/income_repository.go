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

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income entry in the database.
func (r *incomeRepository) Create(ctx context.Context, entry *entity.IncomeEntry) error {
	incomeModel := model.IncomeFromEntity(entry)
	result := r.db.WithContext(ctx).Create(incomeModel)
	return result.Error
}

// FindByID retrieves an income entry by its ID.
func (r *incomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.IncomeEntry, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// FindByPlanner retrieves the full set of income entries owned by a planner.
func (r *incomeRepository) FindByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.IncomeEntry, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Where("planner_id = ?", plannerID).
		Order("start_month ASC, created_at ASC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.IncomeEntry, len(incomeModels))
	for i, im := range incomeModels {
		entries[i] = im.ToEntity()
	}
	return entries, nil
}

// Delete removes an income entry from the database.
func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.IncomeModel{}, "id = ?", id)
	return result.Error
}
