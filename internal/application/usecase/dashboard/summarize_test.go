// Package dashboard contains the projection, aggregation and alerting engine.
package dashboard

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

func TestSummarizeMonth(t *testing.T) {
	march := entity.NewMonth(2026, 3)

	t.Run("empty snapshot yields zero totals", func(t *testing.T) {
		summary, err := SummarizeMonth(&LedgerSnapshot{}, march)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDecimal(t, "TotalIncome", summary.TotalIncome, 0)
		assertDecimal(t, "TotalExpense", summary.TotalExpense, 0)
		assertDecimal(t, "Net", summary.Net, 0)
		if len(summary.Entries) != 0 {
			t.Errorf("expected no entries, got %d", len(summary.Entries))
		}
	})

	t.Run("sums recurring and one-off contributions", func(t *testing.T) {
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 5000, entity.NewMonth(2026, 1), entity.EveryMonth()),
				testIncome(t, 1200, march, entity.SingleMonth()),
				testIncome(t, 900, entity.NewMonth(2026, 4), entity.EveryMonth()),
			},
			Expenses: []*entity.ExpenseEntry{
				testExpense(t, "rent", 1500, 5, entity.NewMonth(2025, 12), entity.EveryMonth()),
				testExpense(t, "course", 300, 10, entity.NewMonth(2026, 2), entity.ForMonths(2)),
			},
		}

		summary, err := SummarizeMonth(snapshot, march)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDecimal(t, "TotalIncome", summary.TotalIncome, 6200)
		assertDecimal(t, "TotalExpense", summary.TotalExpense, 1800)
		assertDecimal(t, "Net", summary.Net, 4400)
		if len(summary.Entries) != 4 {
			t.Errorf("expected 4 contributing entries, got %d", len(summary.Entries))
		}
	})

	t.Run("entry never contributes before its start month", func(t *testing.T) {
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 5000, entity.NewMonth(2026, 4), entity.EveryMonth()),
			},
		}

		summary, err := SummarizeMonth(snapshot, march)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDecimal(t, "TotalIncome", summary.TotalIncome, 0)
	})

	t.Run("bill counts toward expenses in its reference month only", func(t *testing.T) {
		bill := testBill(t, 850, march, utcDate(2026, 3, 12))
		snapshot := &LedgerSnapshot{Bills: []*entity.CardBill{bill}}

		summary, err := SummarizeMonth(snapshot, march)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDecimal(t, "TotalExpense", summary.TotalExpense, 850)
		if len(summary.Entries) != 1 || summary.Entries[0].Kind != entity.EntryKindCardBill {
			t.Fatalf("expected a single card_bill entry, got %+v", summary.Entries)
		}

		next, err := SummarizeMonth(snapshot, march.Next())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDecimal(t, "TotalExpense next month", next.TotalExpense, 0)
	})

	t.Run("paid expenses still aggregate", func(t *testing.T) {
		expense := testExpense(t, "water", 120, 8, march, entity.SingleMonth())
		expense.IsPaid = true
		snapshot := &LedgerSnapshot{Expenses: []*entity.ExpenseEntry{expense}}

		summary, err := SummarizeMonth(snapshot, march)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDecimal(t, "TotalExpense", summary.TotalExpense, 120)
	})

	t.Run("malformed entry fails the whole call", func(t *testing.T) {
		bad := testIncome(t, 100, march, entity.SingleMonth())
		bad.Amount = decimal.NewFromInt(-1)
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 5000, march, entity.EveryMonth()),
				bad,
			},
		}

		_, err := SummarizeMonth(snapshot, march)
		if !errors.Is(err, domainerror.ErrNegativeAmount) {
			t.Errorf("expected ErrNegativeAmount, got %v", err)
		}
	})
}

func TestContributionWindows(t *testing.T) {
	start := entity.NewMonth(2026, 2)
	entry := testExpense(t, "installments", 250, 10, start, entity.ForMonths(3))

	active := 0
	for offset := -2; offset < 8; offset++ {
		if _, ok := ExpenseContribution(entry, start.Add(offset)); ok {
			active++
		}
	}
	if active != 3 {
		t.Errorf("for_months(3) contributed to %d months, want 3", active)
	}
}
