// Package analytics maps named time ranges onto date windows and folds grouped
// expense sums into zero-filled chart buckets and salary-derived savings.
//
// Everything here is pure: callers pass "now" and the grouped sums in, so the
// same inputs always produce the same output.
package analytics

import (
	"fmt"
	"strings"
	"time"

	apperrors "finwise/internal/errors"
)

// Granularity is the unit expenses are grouped by inside a window.
type Granularity string

const (
	DayOfWeek  Granularity = "day_of_week"
	DayOfMonth Granularity = "day_of_month"
	Month      Granularity = "month"
	Year       Granularity = "year"
)

// Supported range names.
const (
	Last7Days   = "last 7 days"
	Last30Days  = "last 30 days"
	LastMonth   = "last month"
	Last6Months = "last 6 months"
	LastYear    = "last year"
	Last6Years  = "last 6 year"
)

var rangeNames = []string{Last7Days, Last30Days, LastMonth, Last6Months, LastYear, Last6Years}

// Window is a resolved range: Start is always inclusive, End is inclusive only
// when EndInclusive is set.
type Window struct {
	Name         string      `json:"range"`
	Start        time.Time   `json:"start"`
	End          time.Time   `json:"end"`
	EndInclusive bool        `json:"end_inclusive"`
	Granularity  Granularity `json:"granularity"`
}

// Resolve maps a named range onto a window anchored at now. All boundaries are
// computed in now's location.
func Resolve(name string, now time.Time) (Window, error) {
	monthStart := startOfMonth(now)

	switch name {
	case Last7Days:
		return Window{Name: name, Start: now.AddDate(0, 0, -7), End: now, Granularity: DayOfWeek}, nil
	case Last30Days:
		return Window{Name: name, Start: now.AddDate(0, 0, -30), End: now, Granularity: DayOfMonth}, nil
	case LastMonth:
		return Window{Name: name, Start: monthStart.AddDate(0, -1, 0), End: monthStart, Granularity: DayOfMonth}, nil
	case Last6Months:
		return Window{Name: name, Start: monthStart.AddDate(0, -5, 0), End: now, Granularity: Month}, nil
	case LastYear:
		prev := now.Year() - 1
		return Window{
			Name:         name,
			Start:        time.Date(prev, time.January, 1, 0, 0, 0, 0, now.Location()),
			End:          time.Date(prev, time.December, 31, 23, 59, 59, 0, now.Location()),
			EndInclusive: true,
			Granularity:  Month,
		}, nil
	case Last6Years:
		return Window{Name: name, Start: monthStart.AddDate(-5, 0, 0), End: now, Granularity: Year}, nil
	}

	return Window{}, apperrors.WithMessage(apperrors.ErrInvalidRange, fmt.Sprintf("Unsupported time range %q, expected one of: %s", name, strings.Join(rangeNames, ", ")))
}

// MonthlyWindow covers every whole month from start's month through now's month.
// It backs the savings-goal projection.
func MonthlyWindow(start, now time.Time) Window {
	return Window{
		Start:       startOfMonth(start),
		End:         startOfMonth(now).AddDate(0, 1, 0),
		Granularity: Month,
	}
}

// SalaryMonths is how many monthly salaries a whole-window savings figure is
// measured against.
func (w Window) SalaryMonths() int64 {
	switch w.Name {
	case Last6Months:
		return 6
	case LastYear:
		return 12
	case Last6Years:
		return 72
	}
	return 1
}

// KeyOf returns the grouping key of the bucket t belongs to. Store-side grouping
// must produce the same keys.
func (w Window) KeyOf(t time.Time) string {
	switch w.Granularity {
	case DayOfWeek:
		return fmt.Sprintf("%d", int(t.Weekday()))
	case DayOfMonth:
		return t.Format("2006-01-02")
	case Month:
		return t.Format("2006-01")
	default:
		return t.Format("2006")
	}
}

// touches reports whether a bucket starting at periodStart overlaps the window end.
func (w Window) touches(periodStart time.Time) bool {
	if w.EndInclusive {
		return !periodStart.After(w.End)
	}
	return periodStart.Before(w.End)
}

// lastInstant is the latest instant still inside the window.
func (w Window) lastInstant() time.Time {
	if w.EndInclusive {
		return w.End
	}
	return w.End.Add(-time.Nanosecond)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}
