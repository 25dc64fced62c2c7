// Package entity defines the core business entities for the domain layer.
package entity

import (
	"errors"
	"testing"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

func TestRecurrenceValidate(t *testing.T) {
	tests := []struct {
		name       string
		recurrence Recurrence
		wantErr    error
	}{
		{"single month", SingleMonth(), nil},
		{"every month", EveryMonth(), nil},
		{"for one month", ForMonths(1), nil},
		{"for twelve months", ForMonths(12), nil},
		{"for zero months", ForMonths(0), domainerror.ErrInvalidRecurrenceCount},
		{"for negative months", ForMonths(-3), domainerror.ErrInvalidRecurrenceCount},
		{"unknown kind", Recurrence{Kind: "weekly"}, domainerror.ErrInvalidRecurrenceKind},
		{"empty kind", Recurrence{}, domainerror.ErrInvalidRecurrenceKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recurrence.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRecurrenceActiveIn(t *testing.T) {
	start := NewMonth(2026, 3)

	tests := []struct {
		name       string
		recurrence Recurrence
		target     Month
		want       bool
	}{
		{"single month at start", SingleMonth(), start, true},
		{"single month after start", SingleMonth(), start.Next(), false},
		{"single month before start", SingleMonth(), start.Prev(), false},

		{"every month at start", EveryMonth(), start, true},
		{"every month far ahead", EveryMonth(), start.Add(24), true},
		{"every month before start", EveryMonth(), start.Prev(), false},

		{"for months at start", ForMonths(3), start, true},
		{"for months last active month", ForMonths(3), start.Add(2), true},
		{"for months first inactive month", ForMonths(3), start.Add(3), false},
		{"for months before start", ForMonths(3), start.Prev(), false},
		{"for one month only at start", ForMonths(1), start, true},
		{"for one month next is inactive", ForMonths(1), start.Next(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.recurrence.ActiveIn(start, tt.target); got != tt.want {
				t.Errorf("ActiveIn(%s, %s) = %v, want %v", start, tt.target, got, tt.want)
			}
		})
	}
}

func TestRecurrenceActiveInAcrossYearBoundary(t *testing.T) {
	start := NewMonth(2025, 11)

	if !ForMonths(4).ActiveIn(start, NewMonth(2026, 2)) {
		t.Error("expected for_months(4) starting 2025-11 to be active in 2026-02")
	}
	if ForMonths(4).ActiveIn(start, NewMonth(2026, 3)) {
		t.Error("expected for_months(4) starting 2025-11 to be inactive in 2026-03")
	}
	if !EveryMonth().ActiveIn(start, NewMonth(2027, 1)) {
		t.Error("expected every_month starting 2025-11 to be active in 2027-01")
	}
}
