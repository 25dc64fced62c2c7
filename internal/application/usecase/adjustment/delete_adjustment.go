// Package adjustment contains savings adjustment use cases.
package adjustment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// DeleteAdjustmentInput represents the input for savings adjustment deletion.
type DeleteAdjustmentInput struct {
	UserID       uuid.UUID
	PlannerID    uuid.UUID
	AdjustmentID uuid.UUID
}

// DeleteAdjustmentOutput represents the output of savings adjustment deletion.
type DeleteAdjustmentOutput struct {
	Message string
}

// DeleteAdjustmentUseCase handles savings adjustment deletion logic.
type DeleteAdjustmentUseCase struct {
	plannerRepo    adapter.PlannerRepository
	adjustmentRepo adapter.AdjustmentRepository
}

// NewDeleteAdjustmentUseCase creates a new DeleteAdjustmentUseCase instance.
func NewDeleteAdjustmentUseCase(
	plannerRepo adapter.PlannerRepository,
	adjustmentRepo adapter.AdjustmentRepository,
) *DeleteAdjustmentUseCase {
	return &DeleteAdjustmentUseCase{
		plannerRepo:    plannerRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

// Execute performs the savings adjustment deletion.
func (uc *DeleteAdjustmentUseCase) Execute(ctx context.Context, input DeleteAdjustmentInput) (*DeleteAdjustmentOutput, error) {
	if err := ownedPlanner(ctx, uc.plannerRepo, input.UserID, input.PlannerID); err != nil {
		return nil, err
	}

	adjustments, err := uc.adjustmentRepo.FindByPlanner(ctx, input.PlannerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings adjustments: %w", err)
	}

	for _, adjustment := range adjustments {
		if adjustment.ID == input.AdjustmentID {
			if err := uc.adjustmentRepo.Delete(ctx, adjustment.ID); err != nil {
				return nil, fmt.Errorf("failed to delete savings adjustment: %w", err)
			}
			return &DeleteAdjustmentOutput{Message: "Savings adjustment deleted"}, nil
		}
	}

	return nil, domainerror.NewEntryError(
		domainerror.ErrCodeEntryNotFound,
		"savings adjustment not found",
		domainerror.ErrEntryNotFound,
	)
}
