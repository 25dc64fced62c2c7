// Package dashboard contains the projection, aggregation and alerting engine.
package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// DueWindowDays is the inclusive number of days ahead scanned for due-soon
// alerts.
const DueWindowDays = 5

// obligation is a concrete dated payment produced by expanding the ledger
// over the due window.
type obligation struct {
	ref         entity.EntryRef
	description string
	amount      decimal.Decimal
	dueDate     time.Time
}

// ComputeAlerts scans the snapshot for obligations due within
// [today, today+DueWindowDays] and evaluates the commitment threshold for
// today's month. Alerts come out in a fixed order: due-soon sorted by due
// date then description, then the due-tomorrow subset, then at most one
// commitment-exceeded alert. An obligation due tomorrow appears in both
// lists; the two kinds feed different UI badges.
func ComputeAlerts(snapshot *LedgerSnapshot, today time.Time, commitmentLimit decimal.Decimal) ([]entity.Alert, error) {
	day := dateOnly(today)
	windowEnd := day.AddDate(0, 0, DueWindowDays)
	tomorrow := day.AddDate(0, 0, 1)

	obligations, err := dueObligations(snapshot, day, windowEnd)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(obligations, func(i, j int) bool {
		if !obligations[i].dueDate.Equal(obligations[j].dueDate) {
			return obligations[i].dueDate.Before(obligations[j].dueDate)
		}
		return obligations[i].description < obligations[j].description
	})

	alerts := make([]entity.Alert, 0, len(obligations)+2)
	for _, o := range obligations {
		alerts = append(alerts, newDueAlert(entity.AlertDueInDays, o, day))
	}
	for _, o := range obligations {
		if o.dueDate.Equal(tomorrow) {
			alerts = append(alerts, newDueAlert(entity.AlertDueTomorrow, o, day))
		}
	}

	kpis, err := ComputeKpis(snapshot, entity.MonthOf(day), commitmentLimit)
	if err != nil {
		return nil, err
	}
	if kpis.CommitmentExceeded {
		ratio := *kpis.CommitmentRatio
		alerts = append(alerts, entity.Alert{
			Kind: entity.AlertCommitmentExceeded,
			Message: fmt.Sprintf(
				"expenses are %s%% of this month's income (limit %s%%)",
				ratio.Mul(decimal.NewFromInt(100)).StringFixed(1),
				commitmentLimit.Mul(decimal.NewFromInt(100)).StringFixed(0),
			),
			Amount: kpis.Current.TotalExpense,
		})
	}

	return alerts, nil
}

// dueObligations expands expenses and bills into dated obligations inside
// the window. Recurring expenses are only considered for months their
// recurrence is active in; the due day is clamped to each month's length.
// Obligations already marked paid never alert.
func dueObligations(snapshot *LedgerSnapshot, from, to time.Time) ([]obligation, error) {
	var result []obligation

	for _, expense := range snapshot.Expenses {
		if err := expense.Validate(); err != nil {
			return nil, err
		}
		if expense.IsPaid {
			continue
		}
		for _, month := range windowMonths(from, to) {
			if !expense.Recurrence.ActiveIn(expense.StartMonth, month) {
				continue
			}
			due := expense.DueDateIn(month)
			if due.Before(from) || due.After(to) {
				continue
			}
			result = append(result, obligation{
				ref:         entity.EntryRef{Kind: entity.EntryKindExpense, ID: expense.ID},
				description: expense.Description,
				amount:      expense.Amount,
				dueDate:     due,
			})
		}
	}

	for _, bill := range snapshot.Bills {
		if err := bill.Validate(); err != nil {
			return nil, err
		}
		if bill.IsPaid {
			continue
		}
		due := dateOnly(bill.DueDate)
		if due.Before(from) || due.After(to) {
			continue
		}
		result = append(result, obligation{
			ref:         entity.EntryRef{Kind: entity.EntryKindCardBill, ID: bill.ID},
			description: billDescription(snapshot, bill),
			amount:      bill.Amount,
			dueDate:     due,
		})
	}

	return result, nil
}

func newDueAlert(kind entity.AlertKind, o obligation, day time.Time) entity.Alert {
	days := int(o.dueDate.Sub(day).Hours() / 24)
	ref := o.ref
	return entity.Alert{
		Kind:        kind,
		Message:     dueMessage(o.description, days),
		Entry:       &ref,
		Description: o.description,
		Amount:      o.amount,
		DueDate:     o.dueDate,
		DaysUntil:   days,
	}
}

func dueMessage(description string, days int) string {
	switch days {
	case 0:
		return fmt.Sprintf("%s is due today", description)
	case 1:
		return fmt.Sprintf("%s is due tomorrow", description)
	default:
		return fmt.Sprintf("%s is due in %d days", description, days)
	}
}

// windowMonths lists the calendar months the window touches, in order.
// A 5-day window spans at most two months.
func windowMonths(from, to time.Time) []entity.Month {
	first := entity.MonthOf(from)
	last := entity.MonthOf(to)
	if first.Compare(last) == 0 {
		return []entity.Month{first}
	}
	return []entity.Month{first, last}
}

// billDescription labels a bill alert with the card's bank and label when the
// card is present in the snapshot, falling back to the reference month alone.
func billDescription(snapshot *LedgerSnapshot, bill *entity.CardBill) string {
	if card := snapshot.CardByID(bill.CardID); card != nil {
		label := card.BankName
		if card.CardLabel != "" {
			label += " " + card.CardLabel
		}
		return fmt.Sprintf("%s bill %s", label, bill.ReferenceMonth)
	}
	return fmt.Sprintf("card bill %s", bill.ReferenceMonth)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
