// Package entity defines the core business entities for the domain layer.
package entity

import (
	"testing"
	"time"
)

func TestMonthAdd(t *testing.T) {
	tests := []struct {
		name  string
		start Month
		n     int
		want  Month
	}{
		{"same month", NewMonth(2026, 3), 0, NewMonth(2026, 3)},
		{"within year", NewMonth(2026, 3), 4, NewMonth(2026, 7)},
		{"across year end", NewMonth(2026, 11), 3, NewMonth(2027, 2)},
		{"backwards within year", NewMonth(2026, 7), -4, NewMonth(2026, 3)},
		{"backwards across year start", NewMonth(2026, 2), -3, NewMonth(2025, 11)},
		{"full year forward", NewMonth(2026, 6), 12, NewMonth(2027, 6)},
		{"full year backward", NewMonth(2026, 6), -12, NewMonth(2025, 6)},
		{"december forward one", NewMonth(2025, 12), 1, NewMonth(2026, 1)},
		{"january backward one", NewMonth(2026, 1), -1, NewMonth(2025, 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Add(tt.n)
			if got != tt.want {
				t.Errorf("Add(%d) = %s, want %s", tt.n, got, tt.want)
			}
		})
	}
}

func TestMonthCompare(t *testing.T) {
	earlier := NewMonth(2025, 12)
	later := NewMonth(2026, 1)

	if earlier.Compare(later) != -1 {
		t.Errorf("expected %s to compare before %s", earlier, later)
	}
	if later.Compare(earlier) != 1 {
		t.Errorf("expected %s to compare after %s", later, earlier)
	}
	if earlier.Compare(earlier) != 0 {
		t.Errorf("expected %s to compare equal to itself", earlier)
	}
	if !earlier.Before(later) || earlier.After(later) {
		t.Error("Before/After disagree with Compare")
	}
}

func TestParseMonth(t *testing.T) {
	t.Run("valid month", func(t *testing.T) {
		got, err := ParseMonth("2026-08")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != NewMonth(2026, 8) {
			t.Errorf("expected 2026-08, got %s", got)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		if _, err := ParseMonth("08/2026"); err == nil {
			t.Error("expected error for invalid format")
		}
	})

	t.Run("round trips through String", func(t *testing.T) {
		m := NewMonth(2026, 2)
		got, err := ParseMonth(m.String())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != m {
			t.Errorf("expected %s, got %s", m, got)
		}
	})
}

func TestMonthDays(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		want  int
	}{
		{"january", NewMonth(2026, 1), 31},
		{"april", NewMonth(2026, 4), 30},
		{"february non-leap", NewMonth(2026, 2), 28},
		{"february leap", NewMonth(2028, 2), 29},
		{"december", NewMonth(2026, 12), 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.month.Days(); got != tt.want {
				t.Errorf("Days() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMonthDateForDay(t *testing.T) {
	t.Run("day within month", func(t *testing.T) {
		got := NewMonth(2026, 4).DateForDay(15)
		want := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("day 31 clamps to end of april", func(t *testing.T) {
		got := NewMonth(2026, 4).DateForDay(31)
		want := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("day 30 clamps to end of leap february", func(t *testing.T) {
		got := NewMonth(2028, 2).DateForDay(30)
		want := time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}

func TestMonthOf(t *testing.T) {
	m := MonthOf(time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC))
	if m != NewMonth(2026, 8) {
		t.Errorf("expected 2026-08, got %s", m)
	}
}
