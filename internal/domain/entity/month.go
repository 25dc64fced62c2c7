// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"time"
)

// Month identifies a calendar month by (year, month). All recurrence and
// aggregation math compares months by ordinal, never by calendar date.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the Month containing the given date.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// NewMonth creates a Month from a year and a 1-based month number.
func NewMonth(year, month int) Month {
	return Month{Year: year, Month: time.Month(month)}
}

// ParseMonth parses a month in "YYYY-MM" format.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month format, expected YYYY-MM: %w", err)
	}
	return MonthOf(t), nil
}

// Index returns the month's absolute ordinal (months since year 0).
func (m Month) Index() int {
	return m.Year*12 + int(m.Month) - 1
}

// Add returns the month n months after m (n may be negative).
func (m Month) Add(n int) Month {
	idx := m.Index() + n
	year := idx / 12
	month := idx%12 + 1
	if month <= 0 {
		// Go's integer division truncates toward zero; normalize negatives.
		year--
		month += 12
	}
	return Month{Year: year, Month: time.Month(month)}
}

// Next returns the month after m.
func (m Month) Next() Month { return m.Add(1) }

// Prev returns the month before m.
func (m Month) Prev() Month { return m.Add(-1) }

// Compare returns -1, 0 or 1 ordering m against other by (year, month) ordinal.
func (m Month) Compare(other Month) int {
	switch {
	case m.Index() < other.Index():
		return -1
	case m.Index() > other.Index():
		return 1
	default:
		return 0
	}
}

// Before reports whether m is strictly before other.
func (m Month) Before(other Month) bool { return m.Index() < other.Index() }

// After reports whether m is strictly after other.
func (m Month) After(other Month) bool { return m.Index() > other.Index() }

// IsZero reports whether m is the zero value.
func (m Month) IsZero() bool { return m.Year == 0 && m.Month == 0 }

// Days returns the number of days in the month.
func (m Month) Days() int {
	// Day zero of the next month is the last day of this one.
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateForDay returns the date of the given day-of-month within m, clamping
// overflowing days (e.g. day 31 in April) to the month's last valid day.
func (m Month) DateForDay(day int) time.Time {
	if last := m.Days(); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
}

// String formats the month as "YYYY-MM".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
