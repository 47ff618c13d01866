// Package calendar computes the booking calendar's month grid and the
// date arithmetic the selection and booking flows depend on. Dates are
// day-granular; time-of-day never enters domain comparisons.
package calendar

import (
	"fmt"
	"time"
)

// GridSize is the fixed cell count of the rendered month: 6 rows of 7
// days, regardless of how many rows the month actually needs.
const GridSize = 42

// Date is a concrete calendar day without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func New(year int, month time.Month, day int) Date {
	// Normalize out-of-range components the way time.Date does, so
	// New(2025, time.August, 32) is September 1st.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// FromTime truncates a timestamp to its calendar day.
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today is the current day in local time.
func Today() Date {
	return FromTime(time.Now())
}

// Time returns the day at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// ISO formats the day as YYYY-MM-DD, the wire format of every backend
// date field.
func (d Date) ISO() string {
	return d.Time().Format("2006-01-02")
}

// ParseISO parses a YYYY-MM-DD string.
func ParseISO(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// Nights is the whole-day count from d to end. Callers guarantee end
// is after d.
func (d Date) Nights(end Date) int {
	return int(end.Time().Sub(d.Time()) / (24 * time.Hour))
}

// Grid returns the 42-cell month view for the reference month: the
// trailing days of the previous month back to the Sunday on or before
// the 1st, every day of the reference month, then leading days of the
// next month until the grid is full.
func Grid(year int, month time.Month) []Date {
	first := New(year, month, 1)
	start := first.AddDays(-int(first.Weekday()))

	grid := make([]Date, GridSize)
	for i := range grid {
		grid[i] = start.AddDays(i)
	}
	return grid
}

// InMonth reports whether the cell belongs to the reference month
// rather than its trailing or leading padding.
func (d Date) InMonth(year int, month time.Month) bool {
	return d.Year == year && d.Month == month
}

// PrevMonth and NextMonth step the reference month for calendar
// navigation.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	d := New(year, month-1, 1)
	return d.Year, d.Month
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	d := New(year, month+1, 1)
	return d.Year, d.Month
}
