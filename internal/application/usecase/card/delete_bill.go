// Package card contains credit card and card bill use cases.
package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// DeleteBillInput represents the input for card bill deletion.
type DeleteBillInput struct {
	UserID uuid.UUID
	BillID uuid.UUID
}

// DeleteBillOutput represents the output of card bill deletion.
type DeleteBillOutput struct {
	Message string
}

// DeleteBillUseCase handles card bill deletion logic.
type DeleteBillUseCase struct {
	plannerRepo adapter.PlannerRepository
	cardRepo    adapter.CardRepository
}

// NewDeleteBillUseCase creates a new DeleteBillUseCase instance.
func NewDeleteBillUseCase(
	plannerRepo adapter.PlannerRepository,
	cardRepo adapter.CardRepository,
) *DeleteBillUseCase {
	return &DeleteBillUseCase{
		plannerRepo: plannerRepo,
		cardRepo:    cardRepo,
	}
}

// Execute performs the card bill deletion.
func (uc *DeleteBillUseCase) Execute(ctx context.Context, input DeleteBillInput) (*DeleteBillOutput, error) {
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

	if err := uc.cardRepo.DeleteBill(ctx, bill.ID); err != nil {
		return nil, fmt.Errorf("failed to delete card bill: %w", err)
	}

	return &DeleteBillOutput{Message: "Card bill deleted"}, nil
}
