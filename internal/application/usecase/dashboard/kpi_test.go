// Package dashboard contains the projection, aggregation and alerting engine.
package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

func TestComputeKpis(t *testing.T) {
	march := entity.NewMonth(2026, 3)
	limit := decimal.NewFromFloat(0.8)

	t.Run("summaries cover previous, current and next month", func(t *testing.T) {
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 4000, entity.NewMonth(2026, 1), entity.EveryMonth()),
			},
			Expenses: []*entity.ExpenseEntry{
				// Active in February and March only.
				testExpense(t, "course", 1000, 10, entity.NewMonth(2026, 2), entity.ForMonths(2)),
			},
		}

		kpis, err := ComputeKpis(snapshot, march, limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if kpis.Previous.Month != march.Prev() || kpis.Current.Month != march || kpis.Projected.Month != march.Next() {
			t.Fatalf("summary months mismatch: %s / %s / %s",
				kpis.Previous.Month, kpis.Current.Month, kpis.Projected.Month)
		}
		assertDecimal(t, "Previous.TotalExpense", kpis.Previous.TotalExpense, 1000)
		assertDecimal(t, "Current.TotalExpense", kpis.Current.TotalExpense, 1000)
		assertDecimal(t, "Projected.TotalExpense", kpis.Projected.TotalExpense, 0)
		assertDecimal(t, "Projected.Net", kpis.Projected.Net, 4000)
	})

	t.Run("ratio below limit does not trip the flag", func(t *testing.T) {
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 4000, march, entity.EveryMonth()),
			},
			Expenses: []*entity.ExpenseEntry{
				testExpense(t, "rent", 2000, 5, march, entity.EveryMonth()),
			},
		}

		kpis, err := ComputeKpis(snapshot, march, limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kpis.CommitmentRatio == nil {
			t.Fatal("expected a commitment ratio")
		}
		assertDecimal(t, "CommitmentRatio", *kpis.CommitmentRatio, 0.5)
		if kpis.CommitmentExceeded {
			t.Error("expected CommitmentExceeded to be false at ratio 0.5")
		}
	})

	t.Run("ratio exactly at limit does not trip the flag", func(t *testing.T) {
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 1000, march, entity.EveryMonth()),
			},
			Expenses: []*entity.ExpenseEntry{
				testExpense(t, "rent", 800, 5, march, entity.EveryMonth()),
			},
		}

		kpis, err := ComputeKpis(snapshot, march, limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kpis.CommitmentExceeded {
			t.Error("expected CommitmentExceeded to be false at ratio == limit")
		}
	})

	t.Run("ratio above limit trips the flag", func(t *testing.T) {
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 1000, march, entity.EveryMonth()),
			},
			Expenses: []*entity.ExpenseEntry{
				testExpense(t, "rent", 900, 5, march, entity.EveryMonth()),
			},
		}

		kpis, err := ComputeKpis(snapshot, march, limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !kpis.CommitmentExceeded {
			t.Error("expected CommitmentExceeded to be true at ratio 0.9")
		}
	})

	t.Run("zero income leaves the ratio not applicable", func(t *testing.T) {
		snapshot := &LedgerSnapshot{
			Expenses: []*entity.ExpenseEntry{
				testExpense(t, "rent", 900, 5, march, entity.EveryMonth()),
			},
		}

		kpis, err := ComputeKpis(snapshot, march, limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if kpis.CommitmentRatio != nil {
			t.Errorf("expected nil ratio with zero income, got %s", kpis.CommitmentRatio)
		}
		if kpis.CommitmentExceeded {
			t.Error("a nil ratio must never trip the breach flag")
		}
	})
}
