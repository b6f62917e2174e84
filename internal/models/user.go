package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is the display currency a user picks for their profile.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyBDT Currency = "BDT"
)

// User represents the user model in the database
type User struct {
	Base
	Email               string          `gorm:"uniqueIndex;not null" json:"email"`
	Username            string          `gorm:"uniqueIndex;not null" json:"username"`
	FullName            string          `json:"full_name"`
	Password            string          `gorm:"not null" json:"-"`
	AvatarURL           string          `json:"avatar_url,omitempty"`
	Currency            Currency        `gorm:"size:3;not null;default:USD" json:"currency"`
	MonthlySalary       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"monthly_salary"`
	IsVerified          bool            `gorm:"default:false" json:"is_verified"`
	VerifyCode          string          `gorm:"size:7" json:"-"`
	VerifyCodeExpiresAt *time.Time      `json:"-"`
	RefreshTokenHash    string          `gorm:"size:64" json:"-"`
	FailedLoginAttempts int             `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time      `json:"-"`
	LastLoginAt         *time.Time      `json:"last_login_at,omitempty"`
}
