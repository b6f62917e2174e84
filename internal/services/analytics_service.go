package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finwise/internal/analytics"
	apperrors "finwise/internal/errors"
	"finwise/internal/models"
)

// expenseGrouper sums expenses per bucket key with a single GROUP BY query.
type expenseGrouper struct {
	db *gorm.DB
}

// NewExpenseGrouper creates an analytics.ExpenseGrouper backed by the expenses table.
func NewExpenseGrouper(db *gorm.DB) analytics.ExpenseGrouper {
	return &expenseGrouper{db: db}
}

type bucketSum struct {
	Bucket string
	Total  decimal.Decimal
}

// GroupExpenses returns the owner's spending per bucket key. Keys match
// analytics.Window.KeyOf so the result merges straight onto the skeleton.
func (g *expenseGrouper) GroupExpenses(ctx context.Context, ownerID string, w analytics.Window) (map[string]decimal.Decimal, error) {
	var rows []bucketSum
	err := g.db.WithContext(ctx).
		Model(&models.Expense{}).
		Select(bucketKeyExpr(g.db.Dialector.Name(), w.Granularity)+" AS bucket, SUM(amount) AS total").
		Where("user_id = ?", ownerID).
		Scopes(inWindow(w)).
		Group("bucket").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	sums := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		sums[r.Bucket] = r.Total
	}
	return sums, nil
}

// bucketKeyExpr is the SQL expression producing the bucket key of occurred_on.
func bucketKeyExpr(dialect string, g analytics.Granularity) string {
	if dialect == "sqlite" {
		switch g {
		case analytics.DayOfWeek:
			return "strftime('%w', occurred_on)"
		case analytics.DayOfMonth:
			return "strftime('%Y-%m-%d', occurred_on)"
		case analytics.Month:
			return "strftime('%Y-%m', occurred_on)"
		default:
			return "strftime('%Y', occurred_on)"
		}
	}

	const ts = "occurred_on AT TIME ZONE 'UTC'"
	switch g {
	case analytics.DayOfWeek:
		return fmt.Sprintf("CAST(CAST(EXTRACT(DOW FROM %s) AS INTEGER) AS TEXT)", ts)
	case analytics.DayOfMonth:
		return fmt.Sprintf("to_char(%s, 'YYYY-MM-DD')", ts)
	case analytics.Month:
		return fmt.Sprintf("to_char(%s, 'YYYY-MM')", ts)
	default:
		return fmt.Sprintf("to_char(%s, 'YYYY')", ts)
	}
}

// inWindow restricts occurred_on to the window.
func inWindow(w analytics.Window) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("occurred_on >= ?", w.Start)
		if w.EndInclusive {
			return db.Where("occurred_on <= ?", w.End)
		}
		return db.Where("occurred_on < ?", w.End)
	}
}

// analyticsService runs the time-range aggregation for a user.
type analyticsService struct {
	db      *gorm.DB
	grouper analytics.ExpenseGrouper
	now     func() time.Time
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB, grouper analytics.ExpenseGrouper) AnalyticsServicer {
	return &analyticsService{db: db, grouper: grouper, now: utcNow}
}

// SpendingChart resolves rangeName and returns the zero-filled chart with savings.
func (s *analyticsService) SpendingChart(ctx context.Context, userID, rangeName string) (*analytics.Chart, error) {
	w, err := analytics.Resolve(rangeName, s.now())
	if err != nil {
		return nil, err
	}

	salary, err := monthlySalary(s.db, userID)
	if err != nil {
		return nil, err
	}

	sums, err := s.grouper.GroupExpenses(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	return analytics.BuildChart(w, sums, salary), nil
}

// CurrentSave projects savings from goalStart's month through the current month.
// Months are counted in UTC, the same calendar the store groups by.
func (s *analyticsService) CurrentSave(ctx context.Context, userID string, goalStart time.Time) (decimal.Decimal, error) {
	now := s.now().UTC()
	goalStart = goalStart.UTC()

	salary, err := monthlySalary(s.db, userID)
	if err != nil {
		return decimal.Zero, err
	}

	sums, err := s.grouper.GroupExpenses(ctx, userID, analytics.MonthlyWindow(goalStart, now))
	if err != nil {
		return decimal.Zero, err
	}
	return analytics.CumulativeSavings(goalStart, now, sums, salary), nil
}

func monthlySalary(db *gorm.DB, userID string) (decimal.Decimal, error) {
	var user models.User
	if err := db.Select("id", "monthly_salary").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, apperrors.ErrUserNotFound
		}
		return decimal.Zero, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return user.MonthlySalary, nil
}
