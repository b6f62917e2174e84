package services

import (
	"testing"
	"time"

	"finwise/internal/models"
	"finwise/internal/testutil"

	"github.com/shopspring/decimal"
)

func TestAddCategory(t *testing.T) {
	t.Run("creates_budget_on_first_use", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		cat, err := svc.AddCategory(user.ID, "Food", decimal.NewFromInt(300))
		testutil.AssertNoError(t, err)

		if cat.Name != "Food" {
			t.Errorf("expected name Food, got %s", cat.Name)
		}
		testutil.AssertDecimal(t, "300", cat.Limit)
		testutil.AssertDecimal(t, "0", cat.Spent)

		budget, err := svc.GetBudget(user.ID)
		testutil.AssertNoError(t, err)
		if len(budget.Categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(budget.Categories))
		}
	})

	t.Run("reuses_existing_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AddCategory(user.ID, "Food", decimal.NewFromInt(300))
		testutil.AssertNoError(t, err)
		_, err = svc.AddCategory(user.ID, "Rent", decimal.NewFromInt(900))
		testutil.AssertNoError(t, err)

		var count int64
		db.Model(&models.Budget{}).Where("user_id = ?", user.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 budget, got %d", count)
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, map[string]string{"Food": "100"})

		_, err := svc.AddCategory(user.ID, "Food", decimal.NewFromInt(200))
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("same_name_other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user2.ID, map[string]string{"Food": "100"})

		_, err := svc.AddCategory(user1.ID, "Food", decimal.NewFromInt(200))
		testutil.AssertNoError(t, err)
	})

	t.Run("negative_limit", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.AddCategory(user.ID, "Food", decimal.NewFromInt(-5))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetBudget(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.GetBudget(user.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("with_categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, map[string]string{"Food": "100", "Fun": "50"})

		budget, err := svc.GetBudget(user.ID)
		testutil.AssertNoError(t, err)
		if len(budget.Categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(budget.Categories))
		}
	})
}

func TestGetLatestCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewBudgetService(db)
	user := testutil.CreateTestUser(t, db)
	budget := testutil.CreateTestBudget(t, db, user.ID, map[string]string{"A": "1", "B": "1", "C": "1", "D": "1"})

	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"A", "B", "C", "D"} {
		db.Model(&models.BudgetCategory{}).
			Where("budget_id = ? AND name = ?", budget.ID, name).
			UpdateColumn("updated_at", base.Add(time.Duration(i)*time.Hour))
	}

	latest, err := svc.GetLatestCategories(user.ID, 3)
	testutil.AssertNoError(t, err)
	if len(latest) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(latest))
	}
	if latest[0].Name != "D" || latest[2].Name != "B" {
		t.Errorf("expected D..B, got %s..%s", latest[0].Name, latest[2].Name)
	}
}

func TestResetCategory(t *testing.T) {
	t.Run("clears_spent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID, map[string]string{"Food": "100"})
		db.Model(&models.BudgetCategory{}).Where("budget_id = ?", budget.ID).Update("spent", decimal.NewFromInt(80))

		cat, err := svc.ResetCategory(user.ID, "Food", decimal.NewFromInt(150))
		testutil.AssertNoError(t, err)
		testutil.AssertDecimal(t, "150", cat.Limit)
		testutil.AssertDecimal(t, "0", cat.Spent)

		var stored models.BudgetCategory
		db.First(&stored, "id = ?", cat.ID)
		testutil.AssertDecimal(t, "0", stored.Spent)
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, nil)

		_, err := svc.ResetCategory(user.ID, "Nope", decimal.NewFromInt(1))
		testutil.AssertAppError(t, err, "BUDGET_CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("hard_delete_allows_reuse", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestBudget(t, db, user.ID, map[string]string{"Food": "100"})

		testutil.AssertNoError(t, svc.DeleteCategory(user.ID, "Food"))

		var count int64
		db.Unscoped().Model(&models.BudgetCategory{}).Where("name = ?", "Food").Count(&count)
		if count != 0 {
			t.Errorf("expected row to be removed, got %d", count)
		}

		_, err := svc.AddCategory(user.ID, "Food", decimal.NewFromInt(10))
		testutil.AssertNoError(t, err)
	})

	t.Run("no_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.DeleteCategory(user.ID, "Food")
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}
