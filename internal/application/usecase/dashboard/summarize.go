// Package dashboard contains the projection, aggregation and alerting engine.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// SummarizeMonth aggregates a planner's ledger snapshot into a MonthSummary
// for one month. Card bills count toward the expense total while keeping
// their own identity in the entry references.
//
// A single malformed entry fails the whole call: silently dropping a
// financial record is worse than aborting.
func SummarizeMonth(snapshot *LedgerSnapshot, month entity.Month) (*entity.MonthSummary, error) {
	summary := &entity.MonthSummary{
		Month:        month,
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, income := range snapshot.Incomes {
		if err := income.Validate(); err != nil {
			return nil, err
		}
		if amount, ok := IncomeContribution(income, month); ok {
			summary.TotalIncome = summary.TotalIncome.Add(amount)
			summary.Entries = append(summary.Entries, entity.EntryRef{
				Kind: entity.EntryKindIncome,
				ID:   income.ID,
			})
		}
	}

	for _, expense := range snapshot.Expenses {
		if err := expense.Validate(); err != nil {
			return nil, err
		}
		if amount, ok := ExpenseContribution(expense, month); ok {
			summary.TotalExpense = summary.TotalExpense.Add(amount)
			summary.Entries = append(summary.Entries, entity.EntryRef{
				Kind: entity.EntryKindExpense,
				ID:   expense.ID,
			})
		}
	}

	for _, bill := range snapshot.Bills {
		if err := bill.Validate(); err != nil {
			return nil, err
		}
		if amount, ok := BillContribution(bill, month); ok {
			summary.TotalExpense = summary.TotalExpense.Add(amount)
			summary.Entries = append(summary.Entries, entity.EntryRef{
				Kind: entity.EntryKindCardBill,
				ID:   bill.ID,
			})
		}
	}

	summary.Net = summary.TotalIncome.Sub(summary.TotalExpense)
	return summary, nil
}
