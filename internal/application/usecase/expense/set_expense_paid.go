// Package expense contains expense entry use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// SetExpensePaidInput represents the input for toggling an expense's paid flag.
type SetExpensePaidInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
	Paid    bool
}

// SetExpensePaidOutput represents the output of the paid flag update.
type SetExpensePaidOutput struct {
	Message string
}

// SetExpensePaidUseCase marks an expense entry as paid or unpaid. Paid
// entries keep contributing to month totals; they only stop alerting.
type SetExpensePaidUseCase struct {
	plannerRepo adapter.PlannerRepository
	expenseRepo adapter.ExpenseRepository
}

// NewSetExpensePaidUseCase creates a new SetExpensePaidUseCase instance.
func NewSetExpensePaidUseCase(
	plannerRepo adapter.PlannerRepository,
	expenseRepo adapter.ExpenseRepository,
) *SetExpensePaidUseCase {
	return &SetExpensePaidUseCase{
		plannerRepo: plannerRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute performs the paid flag update.
func (uc *SetExpensePaidUseCase) Execute(ctx context.Context, input SetExpensePaidInput) (*SetExpensePaidOutput, error) {
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

	if err := uc.expenseRepo.SetPaid(ctx, entry.ID, input.Paid); err != nil {
		return nil, fmt.Errorf("failed to update expense entry: %w", err)
	}

	return &SetExpensePaidOutput{Message: "Expense entry updated"}, nil
}
