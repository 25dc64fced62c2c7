// Package dashboard contains the projection, aggregation and alerting engine.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// BalanceHorizonMonths is how far the accumulated balance looks back and how
// far the projected balance looks ahead, counted from today's month.
const BalanceHorizonMonths = 12

// ComputeBalances accumulates month nets into a current and a projected
// balance. The current balance sums the nets of the BalanceHorizonMonths
// months strictly before today's month, plus every savings adjustment dated
// up to today. The projected balance extends the current one with the nets
// of today's month through the next BalanceHorizonMonths months and the
// adjustments dated after today.
func ComputeBalances(snapshot *LedgerSnapshot, today time.Time) (*entity.Balances, error) {
	day := dateOnly(today)
	reference := entity.MonthOf(day)

	current := decimal.Zero
	for offset := -BalanceHorizonMonths; offset <= -1; offset++ {
		summary, err := SummarizeMonth(snapshot, reference.Add(offset))
		if err != nil {
			return nil, err
		}
		current = current.Add(summary.Net)
	}

	projected := current
	for offset := 0; offset <= BalanceHorizonMonths; offset++ {
		summary, err := SummarizeMonth(snapshot, reference.Add(offset))
		if err != nil {
			return nil, err
		}
		projected = projected.Add(summary.Net)
	}

	for _, adjustment := range snapshot.Adjustments {
		if err := adjustment.Validate(); err != nil {
			return nil, err
		}
		signed := adjustment.Signed()
		projected = projected.Add(signed)
		if !dateOnly(adjustment.Date).After(day) {
			current = current.Add(signed)
		}
	}

	return &entity.Balances{Current: current, Projected: projected}, nil
}
