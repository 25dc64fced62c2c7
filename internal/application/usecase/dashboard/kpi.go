// Package dashboard contains the projection, aggregation and alerting engine.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// ComputeKpis builds the dashboard KPI set for a reference month: summaries
// for the previous, current and projected-next month plus the commitment
// ratio evaluated against the given limit.
//
// The projection uses the same recurrence data as any other month, so next
// month reflects only currently-known recurring and ranged entries. The
// commitment ratio is expense/income for the reference month only; with zero
// income the ratio is not applicable (nil) and never trips the breach flag.
func ComputeKpis(snapshot *LedgerSnapshot, reference entity.Month, commitmentLimit decimal.Decimal) (*entity.KpiSet, error) {
	previous, err := SummarizeMonth(snapshot, reference.Prev())
	if err != nil {
		return nil, err
	}
	current, err := SummarizeMonth(snapshot, reference)
	if err != nil {
		return nil, err
	}
	projected, err := SummarizeMonth(snapshot, reference.Next())
	if err != nil {
		return nil, err
	}

	kpis := &entity.KpiSet{
		Previous:        previous,
		Current:         current,
		Projected:       projected,
		CommitmentLimit: commitmentLimit,
	}

	if current.TotalIncome.IsPositive() {
		ratio := current.TotalExpense.Div(current.TotalIncome)
		kpis.CommitmentRatio = &ratio
		kpis.CommitmentExceeded = ratio.GreaterThan(commitmentLimit)
	}

	return kpis, nil
}
