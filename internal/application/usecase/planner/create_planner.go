// Package planner contains planner-related use cases.
package planner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// CreatePlannerInput represents the input for planner creation.
type CreatePlannerInput struct {
	UserID         uuid.UUID
	Name           string
	Profile        entity.PlannerProfile
	AlertThreshold decimal.Decimal
	Currency       string
}

// CreatePlannerOutput represents the output of planner creation.
type CreatePlannerOutput struct {
	Planner *entity.Planner
}

// CreatePlannerUseCase handles planner creation logic.
type CreatePlannerUseCase struct {
	plannerRepo adapter.PlannerRepository
}

// NewCreatePlannerUseCase creates a new CreatePlannerUseCase instance.
func NewCreatePlannerUseCase(plannerRepo adapter.PlannerRepository) *CreatePlannerUseCase {
	return &CreatePlannerUseCase{plannerRepo: plannerRepo}
}

// Execute performs the planner creation.
func (uc *CreatePlannerUseCase) Execute(ctx context.Context, input CreatePlannerInput) (*CreatePlannerOutput, error) {
	planner, err := entity.NewPlanner(input.Name, input.UserID, input.Profile, input.AlertThreshold, input.Currency)
	if err != nil {
		return nil, err
	}

	if err := uc.plannerRepo.Create(ctx, planner); err != nil {
		return nil, fmt.Errorf("failed to create planner: %w", err)
	}

	return &CreatePlannerOutput{Planner: planner}, nil
}
