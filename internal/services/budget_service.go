package services

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finwise/internal/errors"
	"finwise/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// AddCategory adds a named limit to the user's budget, creating the budget on first use.
func (s *budgetService) AddCategory(userID, name string, limit decimal.Decimal) (*models.BudgetCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if limit.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit cannot be negative")
	}

	var category *models.BudgetCategory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		budget, err := findOrCreateBudget(tx, userID)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.BudgetCategory{}).
			Where("budget_id = ? AND name = ?", budget.ID, name).
			Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return apperrors.ErrDuplicateCategory
		}

		category = &models.BudgetCategory{BudgetID: budget.ID, Name: name, Limit: limit, Spent: decimal.Zero}
		if err := tx.Create(category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// GetBudget returns the user's budget with its categories.
func (s *budgetService) GetBudget(userID string) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.Preload("Categories", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).Where("user_id = ?", userID).First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if budget.Categories == nil {
		budget.Categories = []models.BudgetCategory{}
	}
	return &budget, nil
}

// GetLatestCategories returns the n most recently updated categories.
func (s *budgetService) GetLatestCategories(userID string, n int) ([]models.BudgetCategory, error) {
	budgetID, err := s.budgetID(userID)
	if err != nil {
		return nil, err
	}

	categories := []models.BudgetCategory{}
	if err := s.db.Where("budget_id = ?", budgetID).
		Order("updated_at DESC").
		Limit(n).
		Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// ResetCategory sets a new limit and clears what has been spent.
func (s *budgetService) ResetCategory(userID, name string, limit decimal.Decimal) (*models.BudgetCategory, error) {
	if limit.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit cannot be negative")
	}

	category, err := s.findCategory(userID, name)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(category).Updates(map[string]interface{}{
		"limit_amount": limit,
		"spent":        decimal.Zero,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	category.Limit = limit
	category.Spent = decimal.Zero
	return category, nil
}

// DeleteCategory removes a category. The row is hard-deleted so the name can be reused.
func (s *budgetService) DeleteCategory(userID, name string) error {
	category, err := s.findCategory(userID, name)
	if err != nil {
		return err
	}
	if err := s.db.Unscoped().Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *budgetService) budgetID(userID string) (string, error) {
	var budget models.Budget
	if err := s.db.Select("id").Where("user_id = ?", userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrBudgetNotFound
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget.ID, nil
}

func (s *budgetService) findCategory(userID, name string) (*models.BudgetCategory, error) {
	budgetID, err := s.budgetID(userID)
	if err != nil {
		return nil, err
	}

	var category models.BudgetCategory
	if err := s.db.Where("budget_id = ? AND name = ?", budgetID, strings.TrimSpace(name)).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// findOrCreateBudget returns the user's budget, creating an empty one when missing.
func findOrCreateBudget(tx *gorm.DB, userID string) (*models.Budget, error) {
	var budget models.Budget
	err := tx.Where("user_id = ?", userID).First(&budget).Error
	if err == nil {
		return &budget, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	budget = models.Budget{UserID: userID}
	if err := tx.Create(&budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}
