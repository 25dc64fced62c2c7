// Package dashboard contains the projection, aggregation and alerting engine.
package dashboard

import (
	"testing"

	"github.com/finance-planner/backend/internal/domain/entity"
)

func TestComputeBalances(t *testing.T) {
	today := utcDate(2026, 6, 15)

	t.Run("empty snapshot yields zero balances", func(t *testing.T) {
		balances, err := ComputeBalances(&LedgerSnapshot{}, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDecimal(t, "Current", balances.Current, 0)
		assertDecimal(t, "Projected", balances.Projected, 0)
	})

	t.Run("accumulates nets over the horizon", func(t *testing.T) {
		// Net +1000/month starting January 2026. Current covers Jan..May
		// (months before June), projected adds Jun through next June.
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 3000, entity.NewMonth(2026, 1), entity.EveryMonth()),
			},
			Expenses: []*entity.ExpenseEntry{
				testExpense(t, "rent", 2000, 5, entity.NewMonth(2026, 1), entity.EveryMonth()),
			},
		}

		balances, err := ComputeBalances(snapshot, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDecimal(t, "Current", balances.Current, 5000)
		assertDecimal(t, "Projected", balances.Projected, 18000)
	})

	t.Run("lookback window is twelve months", func(t *testing.T) {
		// A single-month income 13 months back falls outside the window.
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 500, entity.NewMonth(2025, 5), entity.SingleMonth()),
				testIncome(t, 700, entity.NewMonth(2025, 7), entity.SingleMonth()),
			},
		}

		balances, err := ComputeBalances(snapshot, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertDecimal(t, "Current", balances.Current, 700)
	})

	t.Run("adjustments split at today", func(t *testing.T) {
		snapshot := &LedgerSnapshot{
			Adjustments: []*entity.SavingsAdjustment{
				testAdjustment(t, 1000, utcDate(2026, 5, 1), entity.AdjustmentDeposit),
				testAdjustment(t, 300, utcDate(2026, 6, 15), entity.AdjustmentWithdrawal),
				testAdjustment(t, 400, utcDate(2026, 9, 1), entity.AdjustmentDeposit),
			},
		}

		balances, err := ComputeBalances(snapshot, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Today's withdrawal counts; the September deposit only projects.
		assertDecimal(t, "Current", balances.Current, 700)
		assertDecimal(t, "Projected", balances.Projected, 1100)
	})
}
