// Package adjustment contains savings adjustment use cases.
package adjustment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// ListAdjustmentsInput represents the input for savings adjustment listing.
type ListAdjustmentsInput struct {
	UserID    uuid.UUID
	PlannerID uuid.UUID
}

// ListAdjustmentsOutput represents the output of savings adjustment listing.
type ListAdjustmentsOutput struct {
	Adjustments []*entity.SavingsAdjustment
}

// ListAdjustmentsUseCase handles savings adjustment listing logic.
type ListAdjustmentsUseCase struct {
	plannerRepo    adapter.PlannerRepository
	adjustmentRepo adapter.AdjustmentRepository
}

// NewListAdjustmentsUseCase creates a new ListAdjustmentsUseCase instance.
func NewListAdjustmentsUseCase(
	plannerRepo adapter.PlannerRepository,
	adjustmentRepo adapter.AdjustmentRepository,
) *ListAdjustmentsUseCase {
	return &ListAdjustmentsUseCase{
		plannerRepo:    plannerRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

// Execute lists the planner's savings adjustments.
func (uc *ListAdjustmentsUseCase) Execute(ctx context.Context, input ListAdjustmentsInput) (*ListAdjustmentsOutput, error) {
	if err := ownedPlanner(ctx, uc.plannerRepo, input.UserID, input.PlannerID); err != nil {
		return nil, err
	}

	adjustments, err := uc.adjustmentRepo.FindByPlanner(ctx, input.PlannerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings adjustments: %w", err)
	}

	return &ListAdjustmentsOutput{Adjustments: adjustments}, nil
}
