package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending record. It is never edited, only deleted.
type Expense struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index:idx_expense_user_date" json:"user_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Category    string          `gorm:"size:20;not null" json:"category"`
	Description string          `json:"description,omitempty"`
	OccurredOn  time.Time       `gorm:"not null;index:idx_expense_user_date" json:"occurred_on"`
}
