package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"finwise/internal/analytics"
	"finwise/internal/marketdata"
	"finwise/internal/models"
	"finwise/internal/pagination"
)

// RegisterInput carries the fields of a new account.
type RegisterInput struct {
	Email    string
	Username string
	FullName string
	Password string
	Currency models.Currency
}

// ProfileUpdate holds the optional profile fields; nil fields are left unchanged.
type ProfileUpdate struct {
	FullName      *string
	Username      *string
	MonthlySalary *decimal.Decimal
	Currency      *models.Currency
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Verify(email, code string) (*models.User, error)
	CreateVerifiedUser(in RegisterInput) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID, tokenHash string) error
	GetRefreshTokenHash(userID string) (string, error)
	UpdateProfile(userID string, update ProfileUpdate) (*models.User, error)
	ChangePassword(userID, currentPassword, newPassword string) error
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	AddCategory(userID, name string, limit decimal.Decimal) (*models.BudgetCategory, error)
	GetBudget(userID string) (*models.Budget, error)
	GetLatestCategories(userID string, n int) ([]models.BudgetCategory, error)
	ResetCategory(userID, name string, limit decimal.Decimal) (*models.BudgetCategory, error)
	DeleteCategory(userID, name string) error
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	Range  string
	Search string
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(ctx context.Context, userID string, amount decimal.Decimal, category, description string, occurredOn time.Time) (*models.Expense, error)
	GetUserExpenses(userID string, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	DeleteExpense(userID, expenseID string) error
}

// AnalyticsServicer runs the time-range aggregation against the expense store.
type AnalyticsServicer interface {
	SpendingChart(ctx context.Context, userID, rangeName string) (*analytics.Chart, error)
	CurrentSave(ctx context.Context, userID string, goalStart time.Time) (decimal.Decimal, error)
}

// DashboardSummary is the current month at a glance.
type DashboardSummary struct {
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalItems    int64           `json:"total_items"`
	Savings       decimal.Decimal `json:"savings"`
}

// CategoryShare is one slice of the spending pie.
type CategoryShare struct {
	Category   string          `json:"category"`
	Total      decimal.Decimal `json:"total"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Stat metrics.
const (
	MetricExpenses = "expenses"
	MetricItems    = "items"
	MetricSavings  = "savings"
)

// StatCard is a single figure for a named range.
type StatCard struct {
	Range  string          `json:"range"`
	Metric string          `json:"metric"`
	Value  decimal.Decimal `json:"value"`
}

// Features tells the client which onboarding steps the user has completed.
type Features struct {
	Budget   bool `json:"budget"`
	Expense  bool `json:"expense"`
	Stock    bool `json:"stock"`
	SaveGoal bool `json:"save_goal"`
}

// DashboardServicer defines the contract for dashboard read models.
type DashboardServicer interface {
	GetSummary(ctx context.Context, userID string) (*DashboardSummary, error)
	GetBarChart(ctx context.Context, userID, rangeName string) (*analytics.Chart, error)
	GetLineChart(ctx context.Context, userID, rangeName string) (*analytics.Chart, error)
	GetPieChart(ctx context.Context, userID, month string) ([]CategoryShare, error)
	GetStat(ctx context.Context, userID, rangeName, metric string) (*StatCard, error)
	GetFeatures(userID string) (*Features, error)
}

// SaveGoalServicer defines the contract for the savings goal.
type SaveGoalServicer interface {
	SetGoal(ctx context.Context, userID string, goalAmount decimal.Decimal) (*models.SaveGoal, bool, error)
	GetGoal(ctx context.Context, userID string) (*models.SaveGoal, error)
	ResetGoal(ctx context.Context, userID string, goalAmount decimal.Decimal) (*models.SaveGoal, error)
}

// NotificationServicer defines the contract for user notifications.
type NotificationServicer interface {
	GetRecent(userID string) ([]models.Notification, error)
}

// MarketTrends is the movers list with company overviews attached to the gainers.
type MarketTrends = marketdata.Movers

// StockServicer defines the contract for the watch-list and its market data.
type StockServicer interface {
	AddStock(userID, symbol string, price decimal.Decimal, volume int64) (*models.Stock, error)
	GetStocks(userID string) ([]models.Stock, error)
	RemoveStock(userID, symbol string) error
	GetNews(ctx context.Context, userID string) ([]marketdata.NewsItem, error)
	GetMarketTrends(ctx context.Context) (*MarketTrends, error)
	GetIntraday(ctx context.Context, symbol, interval string) (json.RawMessage, error)
}

// Feedback is the generated advice for a period.
type Feedback struct {
	StartDate   time.Time                  `json:"start_date"`
	EndDate     time.Time                  `json:"end_date"`
	Categories  map[string]decimal.Decimal `json:"categories"`
	CurrentSave decimal.Decimal            `json:"current_save"`
	GoalAmount  decimal.Decimal            `json:"goal_amount"`
	Advice      string                     `json:"advice"`
}

// FeedbackServicer defines the contract for generated spending feedback.
type FeedbackServicer interface {
	GenerateFeedback(ctx context.Context, userID string, start, end time.Time) (*Feedback, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
