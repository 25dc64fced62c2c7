// Package income contains income entry use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// CreateIncomeInput represents the input for income entry creation.
type CreateIncomeInput struct {
	UserID      uuid.UUID
	PlannerID   uuid.UUID
	Description string
	Type        entity.IncomeType
	Amount      decimal.Decimal
	StartMonth  entity.Month
	Recurrence  entity.Recurrence
}

// CreateIncomeOutput represents the output of income entry creation.
type CreateIncomeOutput struct {
	Entry *entity.IncomeEntry
}

// CreateIncomeUseCase handles income entry creation logic.
type CreateIncomeUseCase struct {
	plannerRepo adapter.PlannerRepository
	incomeRepo  adapter.IncomeRepository
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(
	plannerRepo adapter.PlannerRepository,
	incomeRepo adapter.IncomeRepository,
) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		plannerRepo: plannerRepo,
		incomeRepo:  incomeRepo,
	}
}

// Execute performs the income entry creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if err := ownedPlanner(ctx, uc.plannerRepo, input.UserID, input.PlannerID); err != nil {
		return nil, err
	}

	entry, err := entity.NewIncomeEntry(
		input.PlannerID,
		input.Description,
		input.Type,
		input.Amount,
		input.StartMonth,
		input.Recurrence,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.incomeRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create income entry: %w", err)
	}

	return &CreateIncomeOutput{Entry: entry}, nil
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
