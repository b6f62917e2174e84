// Package mailer delivers account emails.
package mailer

import (
	"context"

	"finwise/internal/logger"
)

// Mailer sends the verification code a new account needs.
type Mailer interface {
	SendVerificationCode(ctx context.Context, email, username, code string) error
}

// LogMailer writes the message to the application log instead of sending it.
type LogMailer struct{}

// SendVerificationCode logs the code.
func (LogMailer) SendVerificationCode(_ context.Context, email, username, code string) error {
	logger.Get().Infow("verification code issued", "email", email, "username", username, "code", code)
	return nil
}
