// Package card contains credit card and card bill use cases.
package card

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

// CreateBillInput represents the input for card bill creation.
type CreateBillInput struct {
	UserID         uuid.UUID
	CardID         uuid.UUID
	ReferenceMonth entity.Month
	Amount         decimal.Decimal
	DueDate        time.Time
	IsPaid         bool
}

// CreateBillOutput represents the output of card bill creation.
type CreateBillOutput struct {
	Bill *entity.CardBill
}

// CreateBillUseCase handles card bill creation logic.
type CreateBillUseCase struct {
	plannerRepo adapter.PlannerRepository
	cardRepo    adapter.CardRepository
}

// NewCreateBillUseCase creates a new CreateBillUseCase instance.
func NewCreateBillUseCase(
	plannerRepo adapter.PlannerRepository,
	cardRepo adapter.CardRepository,
) *CreateBillUseCase {
	return &CreateBillUseCase{
		plannerRepo: plannerRepo,
		cardRepo:    cardRepo,
	}
}

// Execute performs the card bill creation. The bill inherits the card's
// planner.
func (uc *CreateBillUseCase) Execute(ctx context.Context, input CreateBillInput) (*CreateBillOutput, error) {
	card, err := uc.cardRepo.FindCardByID(ctx, input.CardID)
	if err != nil {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeCardNotFound,
			"credit card not found",
			domainerror.ErrCardNotFound,
		)
	}

	if err := ownedPlanner(ctx, uc.plannerRepo, input.UserID, card.PlannerID); err != nil {
		return nil, err
	}

	bill, err := entity.NewCardBill(
		card.ID,
		card.PlannerID,
		input.ReferenceMonth,
		input.Amount,
		input.DueDate,
		input.IsPaid,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.cardRepo.CreateBill(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create card bill: %w", err)
	}

	return &CreateBillOutput{Bill: bill}, nil
}
