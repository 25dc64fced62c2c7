// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// CreditCard identifies a credit card registered in a planner.
type CreditCard struct {
	ID        uuid.UUID
	PlannerID uuid.UUID
	BankName  string
	CardLabel string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCreditCard creates a new CreditCard entity.
func NewCreditCard(plannerID uuid.UUID, bankName, cardLabel string) (*CreditCard, error) {
	if bankName == "" {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeMissingBankName,
			"bank name is required",
			domainerror.ErrMissingBankName,
		)
	}

	now := time.Now().UTC()
	return &CreditCard{
		ID:        uuid.New(),
		PlannerID: plannerID,
		BankName:  bankName,
		CardLabel: cardLabel,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CardBill is one card's bill for one reference month. The engine treats it
// as an expense obligation for aggregation while it keeps its own identity
// for alerting. Uniqueness per (card, month) is a caller-side concern.
type CardBill struct {
	ID             uuid.UUID
	CardID         uuid.UUID
	PlannerID      uuid.UUID
	ReferenceMonth Month
	Amount         decimal.Decimal
	DueDate        time.Time
	IsPaid         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCardBill creates a new CardBill entity.
func NewCardBill(
	cardID, plannerID uuid.UUID,
	referenceMonth Month,
	amount decimal.Decimal,
	dueDate time.Time,
	isPaid bool,
) (*CardBill, error) {
	now := time.Now().UTC()

	bill := &CardBill{
		ID:             uuid.New(),
		CardID:         cardID,
		PlannerID:      plannerID,
		ReferenceMonth: referenceMonth,
		Amount:         amount,
		DueDate:        dueDate,
		IsPaid:         isPaid,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := bill.Validate(); err != nil {
		return nil, err
	}
	return bill, nil
}

// Validate checks the bill's invariants.
func (b *CardBill) Validate() error {
	if b.Amount.IsNegative() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeNegativeAmount,
			"bill amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if b.ReferenceMonth.IsZero() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeMissingStartMonth,
			"bill reference month is required",
			domainerror.ErrMissingStartMonth,
		)
	}
	if b.DueDate.IsZero() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidDueDate,
			"bill due date is required",
			domainerror.ErrInvalidDueDate,
		)
	}
	return nil
}
