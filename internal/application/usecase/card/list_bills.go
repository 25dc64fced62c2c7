// Package card contains credit card and card bill use cases.
package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// ListBillsInput represents the input for card bill listing.
type ListBillsInput struct {
	UserID    uuid.UUID
	PlannerID uuid.UUID
}

// ListBillsOutput represents the output of card bill listing.
type ListBillsOutput struct {
	Bills []*entity.CardBill
}

// ListBillsUseCase handles card bill listing logic.
type ListBillsUseCase struct {
	plannerRepo adapter.PlannerRepository
	cardRepo    adapter.CardRepository
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(
	plannerRepo adapter.PlannerRepository,
	cardRepo adapter.CardRepository,
) *ListBillsUseCase {
	return &ListBillsUseCase{
		plannerRepo: plannerRepo,
		cardRepo:    cardRepo,
	}
}

// Execute lists the planner's card bills.
func (uc *ListBillsUseCase) Execute(ctx context.Context, input ListBillsInput) (*ListBillsOutput, error) {
	if err := ownedPlanner(ctx, uc.plannerRepo, input.UserID, input.PlannerID); err != nil {
		return nil, err
	}

	bills, err := uc.cardRepo.FindBillsByPlanner(ctx, input.PlannerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list card bills: %w", err)
	}

	return &ListBillsOutput{Bills: bills}, nil
}
