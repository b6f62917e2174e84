package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finwise/internal/analytics"
	apperrors "finwise/internal/errors"
	"finwise/internal/models"
)

// Default ranges of the dashboard charts.
const (
	DefaultBarChartRange  = analytics.Last6Months
	DefaultLineChartRange = analytics.Last7Days
)

var hundred = decimal.NewFromInt(100)

// dashboardService builds the dashboard read models.
type dashboardService struct {
	db        *gorm.DB
	grouper   analytics.ExpenseGrouper
	analytics AnalyticsServicer
	now       func() time.Time
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB, grouper analytics.ExpenseGrouper, analyticsSvc AnalyticsServicer) DashboardServicer {
	return &dashboardService{db: db, grouper: grouper, analytics: analyticsSvc, now: utcNow}
}

// GetSummary returns salary, spending, item count and savings for the current month.
func (s *dashboardService) GetSummary(ctx context.Context, userID string) (*DashboardSummary, error) {
	now := s.now()
	w := analytics.MonthlyWindow(now, now)

	salary, err := monthlySalary(s.db, userID)
	if err != nil {
		return nil, err
	}

	sums, err := s.grouper.GroupExpenses(ctx, userID, w)
	if err != nil {
		return nil, err
	}
	items, err := s.countExpenses(ctx, userID, w)
	if err != nil {
		return nil, err
	}

	total := analytics.Total(sums)
	return &DashboardSummary{
		MonthlySalary: salary,
		TotalExpenses: total,
		TotalItems:    items,
		Savings:       salary.Sub(total),
	}, nil
}

// GetBarChart returns the spending chart of a monthly or yearly range.
func (s *dashboardService) GetBarChart(ctx context.Context, userID, rangeName string) (*analytics.Chart, error) {
	if rangeName == "" {
		rangeName = DefaultBarChartRange
	}
	w, err := analytics.Resolve(rangeName, s.now())
	if err != nil {
		return nil, err
	}
	if w.Granularity != analytics.Month && w.Granularity != analytics.Year {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidRange,
			fmt.Sprintf("Bar chart needs a monthly or yearly range, got %q", rangeName))
	}
	return s.analytics.SpendingChart(ctx, userID, rangeName)
}

// GetLineChart returns the spending chart of any supported range.
func (s *dashboardService) GetLineChart(ctx context.Context, userID, rangeName string) (*analytics.Chart, error) {
	if rangeName == "" {
		rangeName = DefaultLineChartRange
	}
	return s.analytics.SpendingChart(ctx, userID, rangeName)
}

// GetPieChart returns per-category totals and shares for a month of the current year.
func (s *dashboardService) GetPieChart(ctx context.Context, userID, month string) ([]CategoryShare, error) {
	now := s.now()
	m := now.Month()
	if month != "" {
		parsed, ok := parseMonth(month)
		if !ok {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidMonth, fmt.Sprintf("Unsupported month %q", month))
		}
		m = parsed
	}

	start := time.Date(now.Year(), m, 1, 0, 0, 0, 0, time.UTC)
	w := analytics.Window{Start: start, End: start.AddDate(0, 1, 0), Granularity: analytics.Month}

	var rows []struct {
		Category string
		Total    decimal.Decimal
	}
	if err := s.db.WithContext(ctx).
		Model(&models.Expense{}).
		Select("category, SUM(amount) AS total").
		Where("user_id = ?", userID).
		Scopes(inWindow(w)).
		Group("category").
		Order("total DESC").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	grand := decimal.Zero
	for _, r := range rows {
		grand = grand.Add(r.Total)
	}

	shares := make([]CategoryShare, 0, len(rows))
	if grand.IsZero() {
		return shares, nil
	}
	for _, r := range rows {
		shares = append(shares, CategoryShare{
			Category:   r.Category,
			Total:      r.Total,
			Percentage: r.Total.Div(grand).Mul(hundred).Round(2),
		})
	}
	return shares, nil
}

// GetStat returns one metric for a named range.
func (s *dashboardService) GetStat(ctx context.Context, userID, rangeName, metric string) (*StatCard, error) {
	w, err := analytics.Resolve(rangeName, s.now())
	if err != nil {
		return nil, err
	}

	card := &StatCard{Range: rangeName, Metric: metric}
	switch metric {
	case MetricItems:
		items, err := s.countExpenses(ctx, userID, w)
		if err != nil {
			return nil, err
		}
		card.Value = decimal.NewFromInt(items)
	case MetricExpenses, MetricSavings:
		sums, err := s.grouper.GroupExpenses(ctx, userID, w)
		if err != nil {
			return nil, err
		}
		card.Value = analytics.Total(sums)
		if metric == MetricSavings {
			salary, err := monthlySalary(s.db, userID)
			if err != nil {
				return nil, err
			}
			card.Value = salary.Mul(decimal.NewFromInt(w.SalaryMonths())).Sub(card.Value)
		}
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("metric must be one of %s, %s, %s", MetricExpenses, MetricItems, MetricSavings))
	}
	return card, nil
}

// GetFeatures reports which parts of the app the user has started using.
func (s *dashboardService) GetFeatures(userID string) (*Features, error) {
	exists := func(model interface{}, query string, args ...interface{}) (bool, error) {
		var count int64
		if err := s.db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
			return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return count > 0, nil
	}

	var (
		f   Features
		err error
	)
	if f.Budget, err = exists(&models.BudgetCategory{},
		"budget_id IN (?)", s.db.Model(&models.Budget{}).Select("id").Where("user_id = ?", userID)); err != nil {
		return nil, err
	}
	if f.Expense, err = exists(&models.Expense{}, "user_id = ?", userID); err != nil {
		return nil, err
	}
	if f.Stock, err = exists(&models.Stock{}, "user_id = ?", userID); err != nil {
		return nil, err
	}
	if f.SaveGoal, err = exists(&models.SaveGoal{}, "user_id = ?", userID); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *dashboardService) countExpenses(ctx context.Context, userID string, w analytics.Window) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Scopes(inWindow(w)).
		Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return count, nil
}

// parseMonth accepts full or three-letter English month names in any case.
func parseMonth(name string) (time.Month, bool) {
	name = strings.TrimSpace(name)
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(name, m.String()) || strings.EqualFold(name, m.String()[:3]) {
			return m, true
		}
	}
	return 0, false
}
