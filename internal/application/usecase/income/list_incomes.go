// Package income contains income entry use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// ListIncomesInput represents the input for income entry listing.
type ListIncomesInput struct {
	UserID    uuid.UUID
	PlannerID uuid.UUID
}

// ListIncomesOutput represents the output of income entry listing.
type ListIncomesOutput struct {
	Entries []*entity.IncomeEntry
}

// ListIncomesUseCase handles income entry listing logic.
type ListIncomesUseCase struct {
	plannerRepo adapter.PlannerRepository
	incomeRepo  adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(
	plannerRepo adapter.PlannerRepository,
	incomeRepo adapter.IncomeRepository,
) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		plannerRepo: plannerRepo,
		incomeRepo:  incomeRepo,
	}
}

// Execute lists the planner's income entries.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	if err := ownedPlanner(ctx, uc.plannerRepo, input.UserID, input.PlannerID); err != nil {
		return nil, err
	}

	entries, err := uc.incomeRepo.FindByPlanner(ctx, input.PlannerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income entries: %w", err)
	}

	return &ListIncomesOutput{Entries: entries}, nil
}
