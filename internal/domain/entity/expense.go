// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// ExpenseCategory represents the category of an expense entry.
type ExpenseCategory string

const (
	ExpenseCategoryFinancing ExpenseCategory = "financing"
	ExpenseCategoryElectric  ExpenseCategory = "electric"
	ExpenseCategoryWater     ExpenseCategory = "water"
	ExpenseCategoryInternet  ExpenseCategory = "internet"
	ExpenseCategoryPhone     ExpenseCategory = "phone"
	ExpenseCategoryRent      ExpenseCategory = "rent"
	ExpenseCategoryTax       ExpenseCategory = "tax"
	ExpenseCategoryOther     ExpenseCategory = "other"
)

// ExpenseEntry represents a recurring or one-off expense obligation owned by
// a planner. DueDay is a day-of-month (1-31); months shorter than the due day
// clamp it to their last day.
type ExpenseEntry struct {
	ID          uuid.UUID
	PlannerID   uuid.UUID
	Description string
	Category    ExpenseCategory
	Amount      decimal.Decimal
	DueDay      int
	StartMonth  Month
	Recurrence  Recurrence
	IsPaid      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpenseEntry creates a new ExpenseEntry entity.
func NewExpenseEntry(
	plannerID uuid.UUID,
	description string,
	category ExpenseCategory,
	amount decimal.Decimal,
	dueDay int,
	startMonth Month,
	recurrence Recurrence,
) (*ExpenseEntry, error) {
	now := time.Now().UTC()

	entry := &ExpenseEntry{
		ID:          uuid.New(),
		PlannerID:   plannerID,
		Description: description,
		Category:    category,
		Amount:      amount,
		DueDay:      dueDay,
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
func (e *ExpenseEntry) Validate() error {
	if e.Amount.IsNegative() {
		return domainerror.NewEntryError(
			domainerror.ErrCodeNegativeAmount,
			"expense amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if !isValidExpenseCategory(e.Category) {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidExpenseCategory,
			"unknown expense category",
			domainerror.ErrInvalidExpenseCategory,
		)
	}
	if e.DueDay < 1 || e.DueDay > 31 {
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidDueDay,
			"due day must be between 1 and 31",
			domainerror.ErrInvalidDueDay,
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

// DueDateIn returns the entry's due date within the given month, with the
// day-of-month clamped to the month's length.
func (e *ExpenseEntry) DueDateIn(month Month) time.Time {
	return month.DateForDay(e.DueDay)
}

func isValidExpenseCategory(c ExpenseCategory) bool {
	switch c {
	case ExpenseCategoryFinancing, ExpenseCategoryElectric, ExpenseCategoryWater,
		ExpenseCategoryInternet, ExpenseCategoryPhone, ExpenseCategoryRent,
		ExpenseCategoryTax, ExpenseCategoryOther:
		return true
	}
	return false
}
