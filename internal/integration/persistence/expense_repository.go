// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense entry in the database.
func (r *expenseRepository) Create(ctx context.Context, entry *entity.ExpenseEntry) error {
	expenseModel := model.ExpenseFromEntity(entry)
	result := r.db.WithContext(ctx).Create(expenseModel)
	return result.Error
}

// FindByID retrieves an expense entry by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseEntry, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByPlanner retrieves the full set of expense entries owned by a planner.
func (r *expenseRepository) FindByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.ExpenseEntry, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("planner_id = ?", plannerID).
		Order("start_month ASC, due_day ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.ExpenseEntry, len(expenseModels))
	for i, em := range expenseModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// SetPaid updates the paid flag of an expense entry.
func (r *expenseRepository) SetPaid(ctx context.Context, id uuid.UUID, paid bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_paid":    paid,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// Delete removes an expense entry from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	return result.Error
}
