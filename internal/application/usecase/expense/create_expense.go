// Package expense contains expense entry use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense entry creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	PlannerID   uuid.UUID
	Description string
	Category    entity.ExpenseCategory
	Amount      decimal.Decimal
	DueDay      int
	StartMonth  entity.Month
	Recurrence  entity.Recurrence
}

// CreateExpenseOutput represents the output of expense entry creation.
type CreateExpenseOutput struct {
	Entry *entity.ExpenseEntry
}

// CreateExpenseUseCase handles expense entry creation logic.
type CreateExpenseUseCase struct {
	plannerRepo adapter.PlannerRepository
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	plannerRepo adapter.PlannerRepository,
	expenseRepo adapter.ExpenseRepository,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		plannerRepo: plannerRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense entry creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := ownedPlanner(ctx, uc.plannerRepo, input.UserID, input.PlannerID); err != nil {
		return nil, err
	}

	entry, err := entity.NewExpenseEntry(
		input.PlannerID,
		input.Description,
		input.Category,
		input.Amount,
		input.DueDay,
		input.StartMonth,
		input.Recurrence,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create expense entry: %w", err)
	}

	return &CreateExpenseOutput{Entry: entry}, nil
}

// ownedPlanner resolves the planner and enforces ownership.
func ownedPlanner(ctx context.Context, plannerRepo adapter.PlannerRepository, userID, plannerID uuid.UUID) error {
	planner, err := plannerRepo.FindByID(ctx, plannerID)
	if err != nil {
		return err
	}
	if planner.OwnerUserID != userID {
		return domainerror.NewPlannerError(
			domainerror.ErrCodeUnauthorizedPlannerAccess,
			"planner does not belong to user",
			domainerror.ErrUnauthorizedPlannerAccess,
		)
	}
	return nil
}
