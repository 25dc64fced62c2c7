// Package dashboard contains the projection, aggregation and alerting engine.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// IncomeContribution returns the amount an income entry contributes to the
// target month, and whether it contributes at all. It is a pure function of
// (entry, month) and assumes a well-formed entry; malformed recurrence rules
// are rejected at entry construction, never here.
func IncomeContribution(entry *entity.IncomeEntry, target entity.Month) (decimal.Decimal, bool) {
	if !entry.Recurrence.ActiveIn(entry.StartMonth, target) {
		return decimal.Zero, false
	}
	return entry.Amount, true
}

// ExpenseContribution returns the amount an expense entry contributes to the
// target month, and whether it contributes at all.
func ExpenseContribution(entry *entity.ExpenseEntry, target entity.Month) (decimal.Decimal, bool) {
	if !entry.Recurrence.ActiveIn(entry.StartMonth, target) {
		return decimal.Zero, false
	}
	return entry.Amount, true
}

// BillContribution returns the amount a card bill contributes to the target
// month. A bill contributes only to its own reference month.
func BillContribution(bill *entity.CardBill, target entity.Month) (decimal.Decimal, bool) {
	if bill.ReferenceMonth.Compare(target) != 0 {
		return decimal.Zero, false
	}
	return bill.Amount, true
}
