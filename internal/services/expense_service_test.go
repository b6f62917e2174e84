package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finwise/internal/analytics"
	"finwise/internal/events"
	"finwise/internal/models"
	"finwise/internal/pagination"
	"finwise/internal/testutil"
)

func newTestExpenseService(t *testing.T) (*expenseService, *gorm.DB, *recordingPublisher) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	pub := &recordingPublisher{}
	svc := NewExpenseService(db, pub).(*expenseService)
	svc.now = clock
	return svc, db, pub
}

func categoryByName(t *testing.T, db *gorm.DB, budgetID, name string) models.BudgetCategory {
	t.Helper()
	var cat models.BudgetCategory
	if err := db.Where("budget_id = ? AND name = ?", budgetID, name).First(&cat).Error; err != nil {
		t.Fatalf("category %s: %v", name, err)
	}
	return cat
}

func TestCreateExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("charges_existing_category", func(t *testing.T) {
		svc, db, pub := newTestExpenseService(t)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, map[string]string{"Food": "100"})

		expense, err := svc.CreateExpense(ctx, user.ID, decimal.NewFromInt(40), "Food", "lunch", day(2026, time.October, 2))
		testutil.AssertNoError(t, err)

		if expense.ID == "" {
			t.Fatal("expected expense ID")
		}
		testutil.AssertDecimal(t, "40", categoryByName(t, db, budget.ID, "Food").Spent)
		if len(pub.published()) != 0 {
			t.Error("expected no event below the limit")
		}
	})

	t.Run("creates_unknown_category_without_limit", func(t *testing.T) {
		svc, db, pub := newTestExpenseService(t)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, nil)

		_, err := svc.CreateExpense(ctx, user.ID, decimal.NewFromInt(15), "Taxi", "", time.Time{})
		testutil.AssertNoError(t, err)

		cat := categoryByName(t, db, budget.ID, "Taxi")
		testutil.AssertDecimal(t, "0", cat.Limit)
		testutil.AssertDecimal(t, "15", cat.Spent)
		if len(pub.published()) != 0 {
			t.Error("expected no event for a category without limit")
		}
	})

	t.Run("zero_date_defaults_to_now", func(t *testing.T) {
		svc, db, _ := newTestExpenseService(t)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, nil)

		expense, err := svc.CreateExpense(ctx, user.ID, decimal.NewFromInt(1), "Misc", "", time.Time{})
		testutil.AssertNoError(t, err)
		if !expense.OccurredOn.Equal(fixedNow) {
			t.Errorf("expected %s, got %s", fixedNow, expense.OccurredOn)
		}
	})

	t.Run("reaching_limit_notifies", func(t *testing.T) {
		svc, db, pub := newTestExpenseService(t)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, map[string]string{"Food": "100"})

		_, err := svc.CreateExpense(ctx, user.ID, decimal.NewFromInt(60), "Food", "", time.Time{})
		testutil.AssertNoError(t, err)
		_, err = svc.CreateExpense(ctx, user.ID, decimal.NewFromInt(40), "Food", "", time.Time{})
		testutil.AssertNoError(t, err)

		var notes []models.Notification
		db.Where("user_id = ?", user.ID).Find(&notes)
		if len(notes) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(notes))
		}

		published := pub.published()
		if len(published) != 1 {
			t.Fatalf("expected 1 event, got %d", len(published))
		}
		if published[0].Type != events.BudgetLimitReached || published[0].Payload["category"] != "Food" {
			t.Errorf("unexpected event %+v", published[0])
		}
	})

	t.Run("no_budget", func(t *testing.T) {
		svc, db, _ := newTestExpenseService(t)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(ctx, user.ID, decimal.NewFromInt(10), "Food", "", time.Time{})
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")

		var count int64
		db.Model(&models.Expense{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no expense stored, got %d", count)
		}
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		svc, db, _ := newTestExpenseService(t)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, nil)

		_, err := svc.CreateExpense(ctx, user.ID, decimal.Zero, "Food", "", time.Time{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserExpenses(t *testing.T) {
	t.Run("default_page_size_newest_first", func(t *testing.T) {
		svc, db, _ := newTestExpenseService(t)
		user := testutil.CreateTestUser(t, db)
		for d := 1; d <= 7; d++ {
			testutil.CreateTestExpense(t, db, user.ID, "10", "Food", day(2026, time.October, d))
		}

		result, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{}, ExpenseFilter{})
		testutil.AssertNoError(t, err)

		if len(result.Data) != ExpensePageSize {
			t.Fatalf("expected %d items, got %d", ExpensePageSize, len(result.Data))
		}
		if result.TotalItems != 7 || result.TotalPages != 2 {
			t.Errorf("expected 7 items over 2 pages, got %d over %d", result.TotalItems, result.TotalPages)
		}
		if result.Data[0].OccurredOn.Day() != 7 {
			t.Errorf("expected newest first, got day %d", result.Data[0].OccurredOn.Day())
		}
	})

	t.Run("range_filter", func(t *testing.T) {
		svc, db, _ := newTestExpenseService(t)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestExpense(t, db, user.ID, "10", "Food", day(2026, time.October, 10))
		testutil.CreateTestExpense(t, db, user.ID, "10", "Food", day(2026, time.September, 10))

		result, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{}, ExpenseFilter{Range: analytics.Last7Days})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 {
			t.Errorf("expected 1 item, got %d", result.TotalItems)
		}
	})

	t.Run("invalid_range", func(t *testing.T) {
		svc, db, _ := newTestExpenseService(t)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{}, ExpenseFilter{Range: "last decade"})
		testutil.AssertAppError(t, err, "INVALID_RANGE")
	})

	t.Run("case_insensitive_search", func(t *testing.T) {
		svc, db, _ := newTestExpenseService(t)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestExpense(t, db, user.ID, "10", "Groceries", day(2026, time.October, 1))
		testutil.CreateTestExpense(t, db, user.ID, "10", "Rent", day(2026, time.October, 1))

		result, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{}, ExpenseFilter{Search: "GROC"})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 || result.Data[0].Category != "Groceries" {
			t.Errorf("expected only Groceries, got %+v", result.Data)
		}
	})

	t.Run("other_users_hidden", func(t *testing.T) {
		svc, db, _ := newTestExpenseService(t)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestExpense(t, db, other.ID, "10", "Food", day(2026, time.October, 1))

		result, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{}, ExpenseFilter{})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 0 {
			t.Errorf("expected no items, got %d", len(result.Data))
		}
	})
}

func TestDeleteExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("refunds_category", func(t *testing.T) {
		svc, db, _ := newTestExpenseService(t)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, map[string]string{"Food": "100"})
		expense, err := svc.CreateExpense(ctx, user.ID, decimal.NewFromInt(30), "Food", "", time.Time{})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.DeleteExpense(user.ID, expense.ID))
		testutil.AssertDecimal(t, "0", categoryByName(t, db, budget.ID, "Food").Spent)

		var count int64
		db.Model(&models.Expense{}).Where("id = ?", expense.ID).Count(&count)
		if count != 0 {
			t.Error("expected expense to be deleted")
		}
	})

	t.Run("spent_never_negative", func(t *testing.T) {
		svc, db, _ := newTestExpenseService(t)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, map[string]string{"Food": "100"})
		expense := testutil.CreateTestExpense(t, db, user.ID, "30", "Food", day(2026, time.October, 1))

		testutil.AssertNoError(t, svc.DeleteExpense(user.ID, expense.ID))
		testutil.AssertDecimal(t, "0", categoryByName(t, db, budget.ID, "Food").Spent)
	})

	t.Run("other_users_expense", func(t *testing.T) {
		svc, db, _ := newTestExpenseService(t)
		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		expense := testutil.CreateTestExpense(t, db, owner.ID, "30", "Food", day(2026, time.October, 1))

		err := svc.DeleteExpense(intruder.ID, expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

// bumpSpentOnRead adds delta to every category the first time one is read,
// standing in for another request charging the same category mid-transaction.
func bumpSpentOnRead(t *testing.T, db *gorm.DB, delta string) {
	t.Helper()
	var once sync.Once
	err := db.Callback().Query().After("gorm:query").Register("test:bump_spent", func(tx *gorm.DB) {
		if tx.Statement.Table != "budget_categories" {
			return
		}
		once.Do(func() {
			tx.Session(&gorm.Session{NewDB: true}).
				Exec("UPDATE budget_categories SET spent = spent + ?", delta)
		})
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
}

func TestCreateExpense_KeepsConcurrentCharges(t *testing.T) {
	svc, db, pub := newTestExpenseService(t)
	user := testutil.CreateTestUser(t, db)
	budget := testutil.CreateTestBudget(t, db, user.ID, map[string]string{"Food": "100"})
	bumpSpentOnRead(t, db, "75")

	_, err := svc.CreateExpense(context.Background(), user.ID, decimal.NewFromInt(30), "Food", "", time.Time{})
	testutil.AssertNoError(t, err)

	testutil.AssertDecimal(t, "105", categoryByName(t, db, budget.ID, "Food").Spent)
	if len(pub.published()) != 1 {
		t.Errorf("expected the limit event from the combined spend, got %d", len(pub.published()))
	}
}

func TestDeleteExpense_KeepsConcurrentCharges(t *testing.T) {
	svc, db, _ := newTestExpenseService(t)
	user := testutil.CreateTestUser(t, db)
	budget := testutil.CreateTestBudget(t, db, user.ID, map[string]string{"Food": "100"})
	expense, err := svc.CreateExpense(context.Background(), user.ID, decimal.NewFromInt(30), "Food", "", time.Time{})
	testutil.AssertNoError(t, err)

	bumpSpentOnRead(t, db, "20")
	testutil.AssertNoError(t, svc.DeleteExpense(user.ID, expense.ID))

	testutil.AssertDecimal(t, "20", categoryByName(t, db, budget.ID, "Food").Spent)
}
