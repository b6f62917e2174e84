package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// Merge left-joins sparse sums onto the window's skeleton and derives savings:
// salary − spent per month, salary×12 − spent per year.
func Merge(w Window, sums map[string]decimal.Decimal, monthlySalary decimal.Decimal) []Bucket {
	var basis *decimal.Decimal
	switch w.Granularity {
	case Month:
		basis = &monthlySalary
	case Year:
		yearly := monthlySalary.Mul(twelve)
		basis = &yearly
	}

	buckets := make([]Bucket, 0, 12)
	for b := range w.Buckets() {
		if spent, ok := sums[b.Key]; ok {
			b.Expenses = spent
		}
		if basis != nil {
			saved := basis.Sub(b.Expenses)
			b.Savings = &saved
		}
		buckets = append(buckets, b)
	}
	return buckets
}

// BuildChart merges sums into a chart for the window.
func BuildChart(w Window, sums map[string]decimal.Decimal, monthlySalary decimal.Decimal) *Chart {
	return &Chart{Window: w, Buckets: Merge(w, sums, monthlySalary)}
}

// Total adds up every grouped sum.
func Total(sums map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range sums {
		total = total.Add(v)
	}
	return total
}

// CumulativeSavings sums salary − spent over every month from start's month
// through now's month inclusive. Months where spending exceeds salary subtract
// from the total.
func CumulativeSavings(start, now time.Time, monthlySums map[string]decimal.Decimal, monthlySalary decimal.Decimal) decimal.Decimal {
	w := MonthlyWindow(start, now)
	total := decimal.Zero
	for b := range w.Buckets() {
		total = total.Add(monthlySalary.Sub(monthlySums[b.Key]))
	}
	return total
}

// InitialSavings is the figure reported when a goal is created or reset. Unlike
// the running projection it never goes below zero.
func InitialSavings(projection decimal.Decimal) decimal.Decimal {
	if projection.IsNegative() {
		return decimal.Zero
	}
	return projection
}
