// Package dashboard contains the projection, aggregation and alerting engine.
package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

func testIncome(t *testing.T, amount float64, start entity.Month, rec entity.Recurrence) *entity.IncomeEntry {
	t.Helper()
	entry, err := entity.NewIncomeEntry(
		uuid.New(), "salary", entity.IncomeTypeFixed,
		decimal.NewFromFloat(amount), start, rec,
	)
	if err != nil {
		t.Fatalf("failed to build income entry: %v", err)
	}
	return entry
}

func testExpense(t *testing.T, description string, amount float64, dueDay int, start entity.Month, rec entity.Recurrence) *entity.ExpenseEntry {
	t.Helper()
	entry, err := entity.NewExpenseEntry(
		uuid.New(), description, entity.ExpenseCategoryOther,
		decimal.NewFromFloat(amount), dueDay, start, rec,
	)
	if err != nil {
		t.Fatalf("failed to build expense entry: %v", err)
	}
	return entry
}

func testBill(t *testing.T, amount float64, reference entity.Month, dueDate time.Time) *entity.CardBill {
	t.Helper()
	bill, err := entity.NewCardBill(
		uuid.New(), uuid.New(), reference,
		decimal.NewFromFloat(amount), dueDate, false,
	)
	if err != nil {
		t.Fatalf("failed to build card bill: %v", err)
	}
	return bill
}

func testAdjustment(t *testing.T, amount float64, date time.Time, kind entity.AdjustmentKind) *entity.SavingsAdjustment {
	t.Helper()
	adj, err := entity.NewSavingsAdjustment(
		uuid.New(), "adjustment", decimal.NewFromFloat(amount), date, kind,
	)
	if err != nil {
		t.Fatalf("failed to build savings adjustment: %v", err)
	}
	return adj
}

func assertDecimal(t *testing.T, label string, got decimal.Decimal, want float64) {
	t.Helper()
	if !got.Equal(decimal.NewFromFloat(want)) {
		t.Errorf("%s = %s, want %v", label, got, want)
	}
}

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
