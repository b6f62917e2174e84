package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finwise/internal/analytics"
	apperrors "finwise/internal/errors"
	"finwise/internal/events"
	"finwise/internal/logger"
	"finwise/internal/models"
	"finwise/internal/pagination"
)

// ExpensePageSize is the default page size of the expense list.
const ExpensePageSize = 5

// expenseService handles expense-related business logic.
type expenseService struct {
	db        *gorm.DB
	publisher events.Publisher
	now       func() time.Time
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, publisher events.Publisher) ExpenseServicer {
	return &expenseService{db: db, publisher: publisher, now: utcNow}
}

// CreateExpense records an expense and charges it to its budget category. An
// unknown category is created with no limit. Reaching a limit raises a
// notification and publishes an event once the transaction has committed.
func (s *expenseService) CreateExpense(
	ctx context.Context,
	userID string,
	amount decimal.Decimal,
	category, description string,
	occurredOn time.Time,
) (*models.Expense, error) {
	category = strings.TrimSpace(category)
	if !amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if occurredOn.IsZero() {
		occurredOn = s.now()
	}

	expense := &models.Expense{
		UserID:      userID,
		Amount:      amount,
		Category:    category,
		Description: description,
		OccurredOn:  occurredOn.UTC(),
	}

	var reached *models.BudgetCategory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var budget models.Budget
		if err := tx.Where("user_id = ?", userID).First(&budget).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrBudgetNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Create(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var cat models.BudgetCategory
		err := tx.Where("budget_id = ? AND name = ?", budget.ID, category).First(&cat).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			cat = models.BudgetCategory{BudgetID: budget.ID, Name: category, Limit: decimal.Zero, Spent: amount}
			if err := tx.Create(&cat).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		case err != nil:
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		default:
			if err := tx.Model(&cat).Update("spent", gorm.Expr("spent + ?", amount)).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := tx.First(&cat, "id = ?", cat.ID).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		if cat.Reached() {
			note := &models.Notification{
				UserID:  userID,
				Message: fmt.Sprintf("You have reached your %s budget limit of %s", cat.Name, cat.Limit.StringFixed(2)),
			}
			if err := tx.Create(note).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			reached = &cat
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if reached != nil {
		event := events.New(events.BudgetLimitReached, userID, map[string]any{
			"category": reached.Name,
			"limit":    reached.Limit.String(),
			"spent":    reached.Spent.String(),
		})
		if err := s.publisher.Publish(ctx, event); err != nil {
			logger.Get().Errorw("failed to publish budget event", "error", err, "user_id", userID, "category", reached.Name)
		}
	}

	return expense, nil
}

// GetUserExpenses returns a page of the user's expenses, newest first.
func (s *expenseService) GetUserExpenses(
	userID string,
	page pagination.PageRequest,
	filter ExpenseFilter,
) (*pagination.PageResponse[models.Expense], error) {
	page.DefaultsTo(ExpensePageSize)

	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	if filter.Range != "" {
		w, err := analytics.Resolve(filter.Range, s.now())
		if err != nil {
			return nil, err
		}
		base = base.Scopes(inWindow(w))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		base = base.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order("occurred_on DESC, created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteExpense removes one of the user's expenses and gives the amount back
// to its category, unless that would take spent below zero.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrExpenseNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var cat models.BudgetCategory
		err := tx.Joins("JOIN budgets ON budgets.id = budget_categories.budget_id").
			Where("budgets.user_id = ? AND budget_categories.name = ?", userID, expense.Category).
			First(&cat).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Model(&models.BudgetCategory{}).
			Where("id = ? AND spent >= ?", cat.ID, expense.Amount).
			Update("spent", gorm.Expr("spent - ?", expense.Amount)).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

func utcNow() time.Time {
	return time.Now().UTC()
}
