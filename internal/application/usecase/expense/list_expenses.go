// Package expense contains expense entry use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for expense entry listing.
type ListExpensesInput struct {
	UserID    uuid.UUID
	PlannerID uuid.UUID
}

// ListExpensesOutput represents the output of expense entry listing.
type ListExpensesOutput struct {
	Entries []*entity.ExpenseEntry
}

// ListExpensesUseCase handles expense entry listing logic.
type ListExpensesUseCase struct {
	plannerRepo adapter.PlannerRepository
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(
	plannerRepo adapter.PlannerRepository,
	expenseRepo adapter.ExpenseRepository,
) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		plannerRepo: plannerRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute lists the planner's expense entries.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if err := ownedPlanner(ctx, uc.plannerRepo, input.UserID, input.PlannerID); err != nil {
		return nil, err
	}

	entries, err := uc.expenseRepo.FindByPlanner(ctx, input.PlannerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense entries: %w", err)
	}

	return &ListExpensesOutput{Entries: entries}, nil
}
