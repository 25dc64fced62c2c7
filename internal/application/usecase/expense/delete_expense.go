// Package expense contains expense entry use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense entry deletion.
type DeleteExpenseInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
}

// DeleteExpenseOutput represents the output of expense entry deletion.
type DeleteExpenseOutput struct {
	Message string
}

// DeleteExpenseUseCase handles expense entry deletion logic.
type DeleteExpenseUseCase struct {
	plannerRepo adapter.PlannerRepository
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(
	plannerRepo adapter.PlannerRepository,
	expenseRepo adapter.ExpenseRepository,
) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		plannerRepo: plannerRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense entry deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	entry, err := uc.expenseRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"expense entry not found",
			domainerror.ErrEntryNotFound,
		)
	}

	if err := ownedPlanner(ctx, uc.plannerRepo, input.UserID, entry.PlannerID); err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Delete(ctx, entry.ID); err != nil {
		return nil, fmt.Errorf("failed to delete expense entry: %w", err)
	}

	return &DeleteExpenseOutput{Message: "Expense entry deleted"}, nil
}
