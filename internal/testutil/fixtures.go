package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finwise/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a verified user with a hashed password, unique email and no salary.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithSalary(t, db, "0")
}

// CreateTestUserWithSalary creates a verified user earning the given monthly salary.
func CreateTestUserWithSalary(t *testing.T, db *gorm.DB, salary string) *models.User {
	t.Helper()

	n := nextID()
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:         fmt.Sprintf("user%d@test.com", n),
		Username:      fmt.Sprintf("user%d", n),
		FullName:      "Test User",
		Password:      string(hash),
		Currency:      models.CurrencyUSD,
		MonthlySalary: decimal.RequireFromString(salary),
		IsVerified:    true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBudget creates a budget for the user with one category per name/limit pair.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID string, limits map[string]string) *models.Budget {
	t.Helper()

	budget := &models.Budget{UserID: userID}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	for name, limit := range limits {
		category := models.BudgetCategory{
			BudgetID: budget.ID,
			Name:     name,
			Limit:    decimal.RequireFromString(limit),
			Spent:    decimal.Zero,
		}
		if err := db.Create(&category).Error; err != nil {
			t.Fatalf("failed to create test budget category: %v", err)
		}
		budget.Categories = append(budget.Categories, category)
	}
	return budget
}

// CreateTestExpense records an expense without touching any budget category.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, amount, category string, occurredOn time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:     userID,
		Amount:     decimal.RequireFromString(amount),
		Category:   category,
		OccurredOn: occurredOn.UTC(),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestSaveGoal creates a savings goal that started at the given date.
func CreateTestSaveGoal(t *testing.T, db *gorm.DB, userID, goalAmount string, start time.Time) *models.SaveGoal {
	t.Helper()

	goal := &models.SaveGoal{
		UserID:     userID,
		GoalAmount: decimal.RequireFromString(goalAmount),
		StartDate:  start.UTC(),
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test save goal: %v", err)
	}
	return goal
}

// CreateTestStock adds a symbol to the user's watch-list.
func CreateTestStock(t *testing.T, db *gorm.DB, userID, symbol string) *models.Stock {
	t.Helper()

	stock := &models.Stock{
		UserID: userID,
		Symbol: symbol,
		Price:  decimal.NewFromInt(100),
		Volume: 10,
	}
	if err := db.Create(stock).Error; err != nil {
		t.Fatalf("failed to create test stock: %v", err)
	}
	return stock
}
