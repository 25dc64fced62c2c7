// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// AdjustmentKind represents the direction of a savings adjustment.
type AdjustmentKind string

const (
	// AdjustmentDeposit increases the accumulated balance.
	AdjustmentDeposit AdjustmentKind = "deposit"
	// AdjustmentWithdrawal decreases the accumulated balance.
	AdjustmentWithdrawal AdjustmentKind = "withdrawal"
)

// SavingsAdjustment is a one-off movement that affects the accumulated
// balance without being part of the monthly income/expense ledger.
type SavingsAdjustment struct {
	ID          uuid.UUID
	PlannerID   uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Kind        AdjustmentKind
	CreatedAt   time.Time
}

// NewSavingsAdjustment creates a new SavingsAdjustment entity.
func NewSavingsAdjustment(
	plannerID uuid.UUID,
	description string,
	amount decimal.Decimal,
	date time.Time,
	kind AdjustmentKind,
) (*SavingsAdjustment, error) {
	adj := &SavingsAdjustment{
		ID:          uuid.New(),
		PlannerID:   plannerID,
		Description: description,
		Amount:      amount,
		Date:        date,
		Kind:        kind,
		CreatedAt:   time.Now().UTC(),
	}

	if err := adj.Validate(); err != nil {
		return nil, err
	}
	return adj, nil
}

// Validate checks the adjustment's invariants.
func (a *SavingsAdjustment) Validate() error {
	if a.Amount.IsNegative() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeNegativeAmount,
			"adjustment amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if a.Kind != AdjustmentDeposit && a.Kind != AdjustmentWithdrawal {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidAdjustmentKind,
			"adjustment kind must be 'deposit' or 'withdrawal'",
			domainerror.ErrInvalidAdjustmentKind,
		)
	}
	return nil
}

// Signed returns the amount with the sign implied by the kind.
func (a *SavingsAdjustment) Signed() decimal.Decimal {
	if a.Kind == AdjustmentWithdrawal {
		return a.Amount.Neg()
	}
	return a.Amount
}
