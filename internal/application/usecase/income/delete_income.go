// Package income contains income entry use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// DeleteIncomeInput represents the input for income entry deletion.
type DeleteIncomeInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
}

// DeleteIncomeOutput represents the output of income entry deletion.
type DeleteIncomeOutput struct {
	Message string
}

// DeleteIncomeUseCase handles income entry deletion logic.
type DeleteIncomeUseCase struct {
	plannerRepo adapter.PlannerRepository
	incomeRepo  adapter.IncomeRepository
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(
	plannerRepo adapter.PlannerRepository,
	incomeRepo adapter.IncomeRepository,
) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		plannerRepo: plannerRepo,
		incomeRepo:  incomeRepo,
	}
}

// Execute performs the income entry deletion.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) (*DeleteIncomeOutput, error) {
	entry, err := uc.incomeRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"income entry not found",
			domainerror.ErrEntryNotFound,
		)
	}

	if err := ownedPlanner(ctx, uc.plannerRepo, input.UserID, entry.PlannerID); err != nil {
		return nil, err
	}

	if err := uc.incomeRepo.Delete(ctx, entry.ID); err != nil {
		return nil, fmt.Errorf("failed to delete income entry: %w", err)
	}

	return &DeleteIncomeOutput{Message: "Income entry deleted"}, nil
}
