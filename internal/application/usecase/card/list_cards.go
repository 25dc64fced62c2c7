// Package card contains credit card and card bill use cases.
package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// ListCardsInput represents the input for credit card listing.
type ListCardsInput struct {
	UserID    uuid.UUID
	PlannerID uuid.UUID
}

// ListCardsOutput represents the output of credit card listing.
type ListCardsOutput struct {
	Cards []*entity.CreditCard
}

// ListCardsUseCase handles credit card listing logic.
type ListCardsUseCase struct {
	plannerRepo adapter.PlannerRepository
	cardRepo    adapter.CardRepository
}

// NewListCardsUseCase creates a new ListCardsUseCase instance.
func NewListCardsUseCase(
	plannerRepo adapter.PlannerRepository,
	cardRepo adapter.CardRepository,
) *ListCardsUseCase {
	return &ListCardsUseCase{
		plannerRepo: plannerRepo,
		cardRepo:    cardRepo,
	}
}

// Execute lists the planner's credit cards.
func (uc *ListCardsUseCase) Execute(ctx context.Context, input ListCardsInput) (*ListCardsOutput, error) {
	if err := ownedPlanner(ctx, uc.plannerRepo, input.UserID, input.PlannerID); err != nil {
		return nil, err
	}

	cards, err := uc.cardRepo.FindCardsByPlanner(ctx, input.PlannerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}

	return &ListCardsOutput{Cards: cards}, nil
}
