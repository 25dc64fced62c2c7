// Package entity defines the core business entities for the domain layer.
package entity

import (
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// RecurrenceKind represents the kind of recurrence rule.
type RecurrenceKind string

const (
	// RecurrenceSingleMonth contributes only in the entry's start month.
	RecurrenceSingleMonth RecurrenceKind = "single_month"
	// RecurrenceEveryMonth contributes in every month from the start month on.
	RecurrenceEveryMonth RecurrenceKind = "every_month"
	// RecurrenceForMonths contributes in exactly N consecutive months
	// beginning at the start month.
	RecurrenceForMonths RecurrenceKind = "for_months"
)

// Recurrence is the rule determining in which months an entry contributes.
// Months is meaningful only for RecurrenceForMonths.
type Recurrence struct {
	Kind   RecurrenceKind
	Months int
}

// SingleMonth returns a rule that applies only to the start month.
func SingleMonth() Recurrence {
	return Recurrence{Kind: RecurrenceSingleMonth}
}

// EveryMonth returns a rule that applies to every month from the start month on.
func EveryMonth() Recurrence {
	return Recurrence{Kind: RecurrenceEveryMonth}
}

// ForMonths returns a rule that applies for n consecutive months.
func ForMonths(n int) Recurrence {
	return Recurrence{Kind: RecurrenceForMonths, Months: n}
}

// Validate checks that the rule is well formed. Rules are validated at
// construction time so expansion never has to handle malformed input.
func (r Recurrence) Validate() error {
	switch r.Kind {
	case RecurrenceSingleMonth, RecurrenceEveryMonth:
		return nil
	case RecurrenceForMonths:
		if r.Months < 1 {
			return domainerror.NewEntryError(
				domainerror.ErrCodeInvalidRecurrenceCount,
				"recurrence month count must be at least 1",
				domainerror.ErrInvalidRecurrenceCount,
			)
		}
		return nil
	default:
		return domainerror.NewEntryError(
			domainerror.ErrCodeInvalidRecurrenceKind,
			"recurrence kind must be 'single_month', 'every_month' or 'for_months'",
			domainerror.ErrInvalidRecurrenceKind,
		)
	}
}

// ActiveIn reports whether a rule starting at start contributes to target.
// It assumes the rule is well formed; a rule never contributes before its
// start month.
func (r Recurrence) ActiveIn(start, target Month) bool {
	diff := target.Index() - start.Index()
	if diff < 0 {
		return false
	}
	switch r.Kind {
	case RecurrenceSingleMonth:
		return diff == 0
	case RecurrenceEveryMonth:
		return true
	case RecurrenceForMonths:
		return diff < r.Months
	default:
		return false
	}
}
