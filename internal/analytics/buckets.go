package analytics

import (
	"context"
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// Bucket is one labelled period of a chart. Savings is only set for month and
// year granularity.
type Bucket struct {
	Key      string           `json:"key"`
	Label    string           `json:"label"`
	Expenses decimal.Decimal  `json:"expenses"`
	Savings  *decimal.Decimal `json:"savings,omitempty"`
}

// Chart is a window together with its merged buckets.
type Chart struct {
	Window
	Buckets []Bucket `json:"buckets"`
}

// ExpenseGrouper sums one owner's expenses per bucket key inside a window.
// Only keys with at least one expense are present.
type ExpenseGrouper interface {
	GroupExpenses(ctx context.Context, ownerID string, w Window) (map[string]decimal.Decimal, error)
}

// Buckets yields the empty, contiguous bucket skeleton of the window, oldest
// first. Each range over the sequence starts again from the beginning.
func (w Window) Buckets() iter.Seq[Bucket] {
	return func(yield func(Bucket) bool) {
		switch w.Granularity {
		case DayOfWeek:
			first := w.Start.Weekday()
			for i := range 7 {
				wd := (first + time.Weekday(i)) % 7
				if !yield(emptyBucket(w.KeyOf(w.Start.AddDate(0, 0, i)), wd.String()[:3])) {
					return
				}
			}
		case DayOfMonth:
			for d := startOfDay(w.Start); w.touches(d); d = d.AddDate(0, 0, 1) {
				if !yield(emptyBucket(w.KeyOf(d), d.Format("Jan 2"))) {
					return
				}
			}
		case Month:
			qualify := w.Start.Year() != w.lastInstant().Year()
			for m := startOfMonth(w.Start); w.touches(m); m = m.AddDate(0, 1, 0) {
				label := m.Format("Jan")
				if qualify {
					label = m.Format("Jan 2006")
				}
				if !yield(emptyBucket(w.KeyOf(m), label)) {
					return
				}
			}
		case Year:
			for y := startOfYear(w.Start); w.touches(y); y = y.AddDate(1, 0, 0) {
				if !yield(emptyBucket(w.KeyOf(y), y.Format("2006"))) {
					return
				}
			}
		}
	}
}

func emptyBucket(key, label string) Bucket {
	return Bucket{Key: key, Label: label, Expenses: decimal.Zero}
}
