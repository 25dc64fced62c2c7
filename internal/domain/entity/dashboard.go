// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind identifies the kind of ledger record an EntryRef points at.
type EntryKind string

const (
	EntryKindIncome   EntryKind = "income"
	EntryKindExpense  EntryKind = "expense"
	EntryKindCardBill EntryKind = "card_bill"
)

// EntryRef is a lightweight reference to a contributing ledger record.
type EntryRef struct {
	Kind EntryKind
	ID   uuid.UUID
}

// MonthSummary is the derived aggregation of one (planner, month) pair.
// It is recomputed on demand and never persisted.
type MonthSummary struct {
	Month        Month
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
	Entries      []EntryRef
}

// KpiSet is the derived dashboard KPI set: summaries for the previous,
// current and projected-next month plus the commitment ratio for the
// current month. Ratio is nil when income is zero ("not applicable"); a
// nil ratio never triggers the breach flag.
type KpiSet struct {
	Previous  *MonthSummary
	Current   *MonthSummary
	Projected *MonthSummary

	CommitmentRatio    *decimal.Decimal
	CommitmentLimit    decimal.Decimal
	CommitmentExceeded bool
}

// AlertKind identifies the kind of a derived alert.
type AlertKind string

const (
	// AlertDueInDays flags an obligation due within the due window.
	AlertDueInDays AlertKind = "due_in_days"
	// AlertDueTomorrow flags an obligation due exactly tomorrow. Such an
	// obligation also appears as AlertDueInDays; the two lists feed
	// different UI badges and are intentionally not deduplicated.
	AlertDueTomorrow AlertKind = "due_tomorrow"
	// AlertCommitmentExceeded flags a commitment ratio above the limit.
	AlertCommitmentExceeded AlertKind = "commitment_exceeded"
)

// Alert is a derived notification. Alerts are recomputed on every dashboard
// build and never stored.
type Alert struct {
	Kind        AlertKind
	Message     string
	Entry       *EntryRef
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	DaysUntil   int
}

// Balances holds the accumulated balance of past months plus settled
// adjustments, and its projection through the coming twelve months.
type Balances struct {
	Current   decimal.Decimal
	Projected decimal.Decimal
}
