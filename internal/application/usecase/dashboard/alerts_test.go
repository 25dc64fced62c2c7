// Package dashboard contains the projection, aggregation and alerting engine.
package dashboard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

func TestComputeAlerts(t *testing.T) {
	// Saturday 2026-03-28: the 5-day window reaches into April.
	today := utcDate(2026, 3, 28)
	march := entity.NewMonth(2026, 3)
	april := entity.NewMonth(2026, 4)
	limit := decimal.NewFromFloat(0.8)

	t.Run("empty snapshot yields no alerts", func(t *testing.T) {
		alerts, err := ComputeAlerts(&LedgerSnapshot{}, today, limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 0 {
			t.Errorf("expected no alerts, got %d", len(alerts))
		}
	})

	t.Run("due alerts sorted by due date then description", func(t *testing.T) {
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 10000, march, entity.EveryMonth()),
			},
			Expenses: []*entity.ExpenseEntry{
				testExpense(t, "water", 80, 30, march, entity.EveryMonth()),
				testExpense(t, "electric", 150, 30, march, entity.EveryMonth()),
				testExpense(t, "rent", 1500, 1, april, entity.EveryMonth()),
				testExpense(t, "outside window", 40, 15, march, entity.EveryMonth()),
			},
		}

		alerts, err := ComputeAlerts(snapshot, today, limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var due []entity.Alert
		for _, a := range alerts {
			if a.Kind == entity.AlertDueInDays {
				due = append(due, a)
			}
		}
		if len(due) != 3 {
			t.Fatalf("expected 3 due alerts, got %d", len(due))
		}
		wantOrder := []string{"electric", "water", "rent"}
		for i, want := range wantOrder {
			if due[i].Description != want {
				t.Errorf("due[%d] = %q, want %q", i, due[i].Description, want)
			}
		}
		if due[0].DaysUntil != 2 || due[2].DaysUntil != 4 {
			t.Errorf("unexpected DaysUntil: %d, %d", due[0].DaysUntil, due[2].DaysUntil)
		}
	})

	t.Run("due tomorrow duplicates the due-in-days alert", func(t *testing.T) {
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 10000, march, entity.EveryMonth()),
			},
			Expenses: []*entity.ExpenseEntry{
				testExpense(t, "internet", 100, 29, march, entity.EveryMonth()),
			},
		}

		alerts, err := ComputeAlerts(snapshot, today, limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 2 {
			t.Fatalf("expected due_in_days plus due_tomorrow, got %d alerts", len(alerts))
		}
		if alerts[0].Kind != entity.AlertDueInDays || alerts[1].Kind != entity.AlertDueTomorrow {
			t.Errorf("unexpected alert kinds: %s, %s", alerts[0].Kind, alerts[1].Kind)
		}
		if alerts[1].DaysUntil != 1 {
			t.Errorf("due_tomorrow DaysUntil = %d, want 1", alerts[1].DaysUntil)
		}
		if alerts[0].Entry == nil || alerts[1].Entry == nil || alerts[0].Entry.ID != alerts[1].Entry.ID {
			t.Error("both alerts should reference the same entry")
		}
	})

	t.Run("paid obligations never alert", func(t *testing.T) {
		expense := testExpense(t, "internet", 100, 29, march, entity.EveryMonth())
		expense.IsPaid = true
		bill := testBill(t, 500, march, utcDate(2026, 3, 30))
		bill.IsPaid = true
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 10000, march, entity.EveryMonth()),
			},
			Expenses: []*entity.ExpenseEntry{expense},
			Bills:    []*entity.CardBill{bill},
		}

		alerts, err := ComputeAlerts(snapshot, today, limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 0 {
			t.Errorf("expected no alerts for paid obligations, got %d", len(alerts))
		}
	})

	t.Run("due day clamps to short months", func(t *testing.T) {
		// Day 31 in April clamps to April 30, inside the window from April 28.
		aprilToday := utcDate(2026, 4, 28)
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 10000, april, entity.EveryMonth()),
			},
			Expenses: []*entity.ExpenseEntry{
				testExpense(t, "financing", 900, 31, april, entity.EveryMonth()),
			},
		}

		alerts, err := ComputeAlerts(snapshot, aprilToday, limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 1 {
			t.Fatalf("expected one due alert, got %d", len(alerts))
		}
		want := utcDate(2026, 4, 30)
		if !alerts[0].DueDate.Equal(want) {
			t.Errorf("DueDate = %s, want %s", alerts[0].DueDate, want)
		}
	})

	t.Run("bill alerts use explicit due dates and card labels", func(t *testing.T) {
		card, err := entity.NewCreditCard(uuid.New(), "nubank", "platinum")
		if err != nil {
			t.Fatalf("failed to build card: %v", err)
		}
		bill := testBill(t, 640, march, utcDate(2026, 3, 31))
		bill.CardID = card.ID
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 10000, march, entity.EveryMonth()),
			},
			Cards: []*entity.CreditCard{card},
			Bills: []*entity.CardBill{bill},
		}

		alerts, err := ComputeAlerts(snapshot, today, limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 1 {
			t.Fatalf("expected one due alert, got %d", len(alerts))
		}
		if alerts[0].Description != "nubank platinum bill 2026-03" {
			t.Errorf("unexpected description %q", alerts[0].Description)
		}
		if alerts[0].Entry.Kind != entity.EntryKindCardBill {
			t.Errorf("expected card_bill entry kind, got %s", alerts[0].Entry.Kind)
		}
	})

	t.Run("commitment alert comes last", func(t *testing.T) {
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 1000, march, entity.EveryMonth()),
			},
			Expenses: []*entity.ExpenseEntry{
				testExpense(t, "rent", 900, 30, march, entity.EveryMonth()),
			},
		}

		alerts, err := ComputeAlerts(snapshot, today, limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 2 {
			t.Fatalf("expected a due alert plus the commitment alert, got %d", len(alerts))
		}
		last := alerts[len(alerts)-1]
		if last.Kind != entity.AlertCommitmentExceeded {
			t.Errorf("expected commitment_exceeded last, got %s", last.Kind)
		}
		assertDecimal(t, "commitment alert amount", last.Amount, 900)
	})

	t.Run("no commitment alert at or below the limit", func(t *testing.T) {
		snapshot := &LedgerSnapshot{
			Incomes: []*entity.IncomeEntry{
				testIncome(t, 1000, march, entity.EveryMonth()),
			},
			Expenses: []*entity.ExpenseEntry{
				testExpense(t, "rent", 800, 2, march, entity.EveryMonth()),
			},
		}

		alerts, err := ComputeAlerts(snapshot, today, limit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, a := range alerts {
			if a.Kind == entity.AlertCommitmentExceeded {
				t.Error("expected no commitment alert at ratio == limit")
			}
		}
	})
}
