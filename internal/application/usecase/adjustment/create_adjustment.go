// Package adjustment contains savings adjustment use cases.
package adjustment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// CreateAdjustmentInput represents the input for savings adjustment creation.
type CreateAdjustmentInput struct {
	UserID      uuid.UUID
	PlannerID   uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Kind        entity.AdjustmentKind
}

// CreateAdjustmentOutput represents the output of savings adjustment creation.
type CreateAdjustmentOutput struct {
	Adjustment *entity.SavingsAdjustment
}

// CreateAdjustmentUseCase handles savings adjustment creation logic.
type CreateAdjustmentUseCase struct {
	plannerRepo    adapter.PlannerRepository
	adjustmentRepo adapter.AdjustmentRepository
}

// NewCreateAdjustmentUseCase creates a new CreateAdjustmentUseCase instance.
func NewCreateAdjustmentUseCase(
	plannerRepo adapter.PlannerRepository,
	adjustmentRepo adapter.AdjustmentRepository,
) *CreateAdjustmentUseCase {
	return &CreateAdjustmentUseCase{
		plannerRepo:    plannerRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

// Execute performs the savings adjustment creation.
func (uc *CreateAdjustmentUseCase) Execute(ctx context.Context, input CreateAdjustmentInput) (*CreateAdjustmentOutput, error) {
	if err := ownedPlanner(ctx, uc.plannerRepo, input.UserID, input.PlannerID); err != nil {
		return nil, err
	}

	adjustment, err := entity.NewSavingsAdjustment(
		input.PlannerID,
		input.Description,
		input.Amount,
		input.Date,
		input.Kind,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.adjustmentRepo.Create(ctx, adjustment); err != nil {
		return nil, fmt.Errorf("failed to create savings adjustment: %w", err)
	}

	return &CreateAdjustmentOutput{Adjustment: adjustment}, nil
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
