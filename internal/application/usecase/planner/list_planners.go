// Package planner contains planner-related use cases.
package planner

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// ListPlannersInput represents the input for planner listing.
type ListPlannersInput struct {
	UserID uuid.UUID
}

// ListPlannersOutput represents the output of planner listing.
type ListPlannersOutput struct {
	Planners []*entity.Planner
}

// ListPlannersUseCase handles planner listing logic.
type ListPlannersUseCase struct {
	plannerRepo adapter.PlannerRepository
}

// NewListPlannersUseCase creates a new ListPlannersUseCase instance.
func NewListPlannersUseCase(plannerRepo adapter.PlannerRepository) *ListPlannersUseCase {
	return &ListPlannersUseCase{plannerRepo: plannerRepo}
}

// Execute lists the user's planners.
func (uc *ListPlannersUseCase) Execute(ctx context.Context, input ListPlannersInput) (*ListPlannersOutput, error) {
	planners, err := uc.plannerRepo.FindByOwner(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list planners: %w", err)
	}

	return &ListPlannersOutput{Planners: planners}, nil
}
