// Package card contains credit card and card bill use cases.
package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// CreateCardInput represents the input for credit card creation.
type CreateCardInput struct {
	UserID    uuid.UUID
	PlannerID uuid.UUID
	BankName  string
	CardLabel string
}

// CreateCardOutput represents the output of credit card creation.
type CreateCardOutput struct {
	Card *entity.CreditCard
}

// CreateCardUseCase handles credit card creation logic.
type CreateCardUseCase struct {
	plannerRepo adapter.PlannerRepository
	cardRepo    adapter.CardRepository
}

// NewCreateCardUseCase creates a new CreateCardUseCase instance.
func NewCreateCardUseCase(
	plannerRepo adapter.PlannerRepository,
	cardRepo adapter.CardRepository,
) *CreateCardUseCase {
	return &CreateCardUseCase{
		plannerRepo: plannerRepo,
		cardRepo:    cardRepo,
	}
}

// Execute performs the credit card creation.
func (uc *CreateCardUseCase) Execute(ctx context.Context, input CreateCardInput) (*CreateCardOutput, error) {
	if err := ownedPlanner(ctx, uc.plannerRepo, input.UserID, input.PlannerID); err != nil {
		return nil, err
	}

	card, err := entity.NewCreditCard(input.PlannerID, input.BankName, input.CardLabel)
	if err != nil {
		return nil, err
	}

	if err := uc.cardRepo.CreateCard(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create credit card: %w", err)
	}

	return &CreateCardOutput{Card: card}, nil
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
