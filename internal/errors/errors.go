// Package errors provides custom error types for the finwise API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	stderrors "errors"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches any AppError carrying the same code, so wrapped copies of a
// sentinel still satisfy errors.Is(err, ErrX).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// As extracts the AppError from err, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrInvalidToken       = &AppError{Code: "INVALID_TOKEN", Message: "Invalid or expired token", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrAccountNotVerified = &AppError{Code: "ACCOUNT_NOT_VERIFIED", Message: "Account email is not verified", StatusCode: http.StatusForbidden}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
	ErrInvalidVerifyCode  = &AppError{Code: "INVALID_VERIFY_CODE", Message: "Verification code is invalid", StatusCode: http.StatusBadRequest}
	ErrVerifyCodeExpired  = &AppError{Code: "VERIFY_CODE_EXPIRED", Message: "Verification code has expired", StatusCode: http.StatusBadRequest}
)

// General errors.
var (
	ErrInvalidInput     = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound         = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer   = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrStoreUnavailable = &AppError{Code: "STORE_UNAVAILABLE", Message: "Expense store is unavailable", StatusCode: http.StatusInternalServerError}
)

// Aggregation errors.
var (
	ErrInvalidRange = &AppError{Code: "INVALID_RANGE", Message: "Unsupported time range", StatusCode: http.StatusBadRequest}
	ErrInvalidMonth = &AppError{Code: "INVALID_MONTH", Message: "Unsupported month name", StatusCode: http.StatusBadRequest}
)

// User errors.
var (
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail    = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "A user with this username already exists", StatusCode: http.StatusConflict}
)

// Budget errors.
var (
	ErrBudgetNotFound         = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
	ErrBudgetCategoryNotFound = &AppError{Code: "BUDGET_CATEGORY_NOT_FOUND", Message: "Budget category not found", StatusCode: http.StatusNotFound}
	ErrDuplicateCategory      = &AppError{Code: "DUPLICATE_CATEGORY", Message: "This budget category already exists", StatusCode: http.StatusConflict}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)

// Savings goal errors.
var (
	ErrSaveGoalNotFound = &AppError{Code: "SAVE_GOAL_NOT_FOUND", Message: "Savings goal not found", StatusCode: http.StatusNotFound}
)

// Stock watch-list and market data errors.
var (
	ErrStockNotFound         = &AppError{Code: "STOCK_NOT_FOUND", Message: "Stock not found in watch-list", StatusCode: http.StatusNotFound}
	ErrDuplicateStock        = &AppError{Code: "DUPLICATE_STOCK", Message: "Stock is already in the watch-list", StatusCode: http.StatusConflict}
	ErrMarketDataDisabled    = &AppError{Code: "MARKET_DATA_DISABLED", Message: "Market data is not configured", StatusCode: http.StatusServiceUnavailable}
	ErrMarketDataUnavailable = &AppError{Code: "MARKET_DATA_UNAVAILABLE", Message: "Market data provider is unavailable", StatusCode: http.StatusBadGateway}
)

// Feedback errors.
var (
	ErrFeedbackDisabled    = &AppError{Code: "FEEDBACK_DISABLED", Message: "Feedback generation is not configured", StatusCode: http.StatusServiceUnavailable}
	ErrFeedbackUnavailable = &AppError{Code: "FEEDBACK_UNAVAILABLE", Message: "Feedback provider is unavailable", StatusCode: http.StatusBadGateway}
)
