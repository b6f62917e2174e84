package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveGoal is a user's savings target. Only the user's inputs are stored;
// CurrentSave is projected from expenses whenever the goal is read.
type SaveGoal struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	GoalAmount  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"goal_amount"`
	StartDate   time.Time       `gorm:"not null" json:"start_date"`
	CurrentSave decimal.Decimal `gorm:"-" json:"current_save"`
}
