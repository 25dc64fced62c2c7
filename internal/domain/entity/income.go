// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// IncomeType represents the kind of income.
type IncomeType string

const (
	IncomeTypeFixed      IncomeType = "fixed"
	IncomeTypeCommission IncomeType = "commission"
	IncomeTypeBonus      IncomeType = "bonus"
	IncomeTypeExtra      IncomeType = "extra"
	IncomeTypeOther      IncomeType = "other"
)

// IncomeEntry represents a recurring or one-off income owned by a planner.
type IncomeEntry struct {
	ID          uuid.UUID
	PlannerID   uuid.UUID
	Description string
	Type        IncomeType
	Amount      decimal.Decimal
	StartMonth  Month
	Recurrence  Recurrence
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewIncomeEntry creates a new IncomeEntry entity. Validation happens at
// construction; expansion and aggregation assume well-formed entries.
func NewIncomeEntry(
	plannerID uuid.UUID,
	description string,
	incomeType IncomeType,
	amount decimal.Decimal,
	startMonth Month,
	recurrence Recurrence,
) (*IncomeEntry, error) {
	now := time.Now().UTC()

	entry := &IncomeEntry{
		ID:          uuid.New(),
		PlannerID:   plannerID,
		Description: description,
		Type:        incomeType,
		Amount:      amount,
		StartMonth:  startMonth,
		Recurrence:  recurrence,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// Validate checks the entry's invariants.
func (e *IncomeEntry) Validate() error {
	if e.Amount.IsNegative() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeNegativeAmount,
			"income amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if !isValidIncomeType(e.Type) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidIncomeType,
			"income type must be 'fixed', 'commission', 'bonus', 'extra' or 'other'",
			domainerror.ErrInvalidIncomeType,
		)
	}
	if e.StartMonth.IsZero() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeMissingStartMonth,
			"start month is required",
			domainerror.ErrMissingStartMonth,
		)
	}
	return e.Recurrence.Validate()
}

func isValidIncomeType(t IncomeType) bool {
	switch t {
	case IncomeTypeFixed, IncomeTypeCommission, IncomeTypeBonus, IncomeTypeExtra, IncomeTypeOther:
		return true
	}
	return false
}
