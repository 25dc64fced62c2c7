// Package card contains credit card and card bill use cases.
package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// SetBillPaidInput represents the input for toggling a bill's paid flag.
type SetBillPaidInput struct {
	UserID uuid.UUID
	BillID uuid.UUID
	Paid   bool
}

// SetBillPaidOutput represents the output of the paid flag update.
type SetBillPaidOutput struct {
	Message string
}

// SetBillPaidUseCase marks a card bill as paid or unpaid.
type SetBillPaidUseCase struct {
	plannerRepo adapter.PlannerRepository
	cardRepo    adapter.CardRepository
}

// NewSetBillPaidUseCase creates a new SetBillPaidUseCase instance.
func NewSetBillPaidUseCase(
	plannerRepo adapter.PlannerRepository,
	cardRepo adapter.CardRepository,
) *SetBillPaidUseCase {
	return &SetBillPaidUseCase{
		plannerRepo: plannerRepo,
		cardRepo:    cardRepo,
	}
}

// Execute performs the paid flag update.
func (uc *SetBillPaidUseCase) Execute(ctx context.Context, input SetBillPaidInput) (*SetBillPaidOutput, error) {
	bill, err := uc.cardRepo.FindBillByID(ctx, input.BillID)
	if err != nil {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"card bill not found",
			domainerror.ErrEntryNotFound,
		)
	}

	if err := ownedPlanner(ctx, uc.plannerRepo, input.UserID, bill.PlannerID); err != nil {
		return nil, err
	}

	if err := uc.cardRepo.SetBillPaid(ctx, bill.ID, input.Paid); err != nil {
		return nil, fmt.Errorf("failed to update card bill: %w", err)
	}

	return &SetBillPaidOutput{Message: "Card bill updated"}, nil
}
