// Package planner contains planner-related use cases.
package planner

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// GetPlannerInput represents the input for a planner lookup.
type GetPlannerInput struct {
	UserID    uuid.UUID
	PlannerID uuid.UUID
}

// GetPlannerOutput represents the output of a planner lookup.
type GetPlannerOutput struct {
	Planner *entity.Planner
}

// GetPlannerUseCase resolves a planner and enforces ownership.
type GetPlannerUseCase struct {
	plannerRepo adapter.PlannerRepository
}

// NewGetPlannerUseCase creates a new GetPlannerUseCase instance.
func NewGetPlannerUseCase(plannerRepo adapter.PlannerRepository) *GetPlannerUseCase {
	return &GetPlannerUseCase{plannerRepo: plannerRepo}
}

// Execute performs the planner lookup.
func (uc *GetPlannerUseCase) Execute(ctx context.Context, input GetPlannerInput) (*GetPlannerOutput, error) {
	planner, err := uc.plannerRepo.FindByID(ctx, input.PlannerID)
	if err != nil {
		return nil, err
	}
	if planner.OwnerUserID != input.UserID {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeUnauthorizedPlannerAccess,
			"planner does not belong to user",
			domainerror.ErrUnauthorizedPlannerAccess,
		)
	}

	return &GetPlannerOutput{Planner: planner}, nil
}
