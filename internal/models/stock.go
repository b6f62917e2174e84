package models

import "github.com/shopspring/decimal"

// Stock is a watch-list entry.
type Stock struct {
	Base
	UserID string          `gorm:"type:uuid;not null;uniqueIndex:idx_stock_user_symbol" json:"user_id"`
	Symbol string          `gorm:"size:5;not null;uniqueIndex:idx_stock_user_symbol" json:"symbol"`
	Price  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"price"`
	Volume int64           `gorm:"not null" json:"volume"`
}
