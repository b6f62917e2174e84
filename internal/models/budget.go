package models

import "github.com/shopspring/decimal"

// Budget is the single spending plan a user keeps; its categories carry the limits.
type Budget struct {
	Base
	UserID     string           `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Categories []BudgetCategory `gorm:"foreignKey:BudgetID" json:"categories"`
}

// BudgetCategory is one named limit inside a budget. Spent accumulates the
// expenses filed under the category.
type BudgetCategory struct {
	Base
	BudgetID string          `gorm:"type:uuid;not null;uniqueIndex:idx_budget_category_name" json:"budget_id"`
	Name     string          `gorm:"size:20;not null;uniqueIndex:idx_budget_category_name" json:"name"`
	Limit    decimal.Decimal `gorm:"column:limit_amount;type:numeric(14,2);not null;default:0" json:"limit"`
	Spent    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"spent"`
}

// Reached reports whether spending has hit a non-zero limit.
func (c *BudgetCategory) Reached() bool {
	return c.Limit.IsPositive() && c.Spent.GreaterThanOrEqual(c.Limit)
}
