package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "finwise/internal/errors"
	"finwise/internal/logger"
	"finwise/internal/mailer"
	"finwise/internal/models"
)

// UserSettings tunes verification and login lockout.
type UserSettings struct {
	VerifyCodeTTL   time.Duration
	MaxFailedLogins int
	LockDuration    time.Duration
}

// DefaultUserSettings returns a one hour code lifetime and a 15 minute lock after 5 failures.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		VerifyCodeTTL:   time.Hour,
		MaxFailedLogins: 5,
		LockDuration:    15 * time.Minute,
	}
}

// userService handles user-related business logic.
type userService struct {
	db       *gorm.DB
	mailer   mailer.Mailer
	settings UserSettings
	now      func() time.Time
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB, m mailer.Mailer, settings UserSettings) UserServicer {
	return &userService{db: db, mailer: m, settings: settings, now: utcNow}
}

// Register creates an unverified user and mails a 7-digit verification code.
func (s *userService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	code, err := newVerifyCode()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expires := s.now().Add(s.settings.VerifyCodeTTL)
	user, err := s.createUser(in, func(u *models.User) {
		u.VerifyCode = code
		u.VerifyCodeExpiresAt = &expires
	})
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendVerificationCode(ctx, user.Email, user.Username, code); err != nil {
		logger.Get().Errorw("failed to send verification code", "error", err, "user_id", user.ID)
	}
	return user, nil
}

// CreateVerifiedUser creates a user that can log in immediately.
func (s *userService) CreateVerifiedUser(in RegisterInput) (*models.User, error) {
	return s.createUser(in, func(u *models.User) { u.IsVerified = true })
}

func (s *userService) createUser(in RegisterInput, prepare func(*models.User)) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)
	if email == "" || username == "" || in.Password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email, username and password are required")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	currency := in.Currency
	if currency == "" {
		currency = models.CurrencyUSD
	}

	user := &models.User{
		Email:    email,
		Username: username,
		FullName: in.FullName,
		Password: string(hashedPassword),
		Currency: currency,
	}
	prepare(user)

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}

// Verify marks the account verified when the code matches and is still valid.
func (s *userService) Verify(email, code string) (*models.User, error) {
	user, err := s.findByEmail(email)
	if err != nil {
		return nil, err
	}
	if user.IsVerified {
		return user, nil
	}
	if user.VerifyCode == "" || user.VerifyCode != code {
		return nil, apperrors.ErrInvalidVerifyCode
	}
	if user.VerifyCodeExpiresAt == nil || s.now().After(*user.VerifyCodeExpiresAt) {
		return nil, apperrors.ErrVerifyCodeExpired
	}

	if err := s.db.Model(user).Updates(map[string]interface{}{
		"is_verified":            true,
		"verify_code":            "",
		"verify_code_expires_at": nil,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	user.IsVerified = true
	user.VerifyCode = ""
	user.VerifyCodeExpiresAt = nil
	return user, nil
}

// GetUserByEmail retrieves a user by email
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	return s.findByEmail(email)
}

func (s *userService) findByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// VerifyPassword checks if the provided password matches the stored hash
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

// AttemptLogin checks credentials, applying the failed-attempt lockout.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	user, err := s.findByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	now := s.now()
	if user.LockedUntil != nil && now.Before(*user.LockedUntil) {
		return nil, apperrors.ErrAccountLocked
	}

	if !s.VerifyPassword(user, password) {
		attempts := user.FailedLoginAttempts + 1
		updates := map[string]interface{}{"failed_login_attempts": attempts}
		locked := attempts >= s.settings.MaxFailedLogins
		if locked {
			until := now.Add(s.settings.LockDuration)
			updates["failed_login_attempts"] = 0
			updates["locked_until"] = until
		}
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if locked {
			return nil, apperrors.ErrAccountLocked
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, apperrors.ErrAccountNotVerified
	}

	if err := s.db.Model(user).Updates(map[string]interface{}{
		"failed_login_attempts": 0,
		"locked_until":          nil,
		"last_login_at":         now,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastLoginAt = &now
	return user, nil
}

// StoreRefreshTokenHash saves the hash of the user's current refresh token.
func (s *userService) StoreRefreshTokenHash(userID, tokenHash string) error {
	result := s.db.Model(&models.User{}).Where("id = ?", userID).Update("refresh_token_hash", tokenHash)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetRefreshTokenHash returns the stored refresh token hash.
func (s *userService) GetRefreshTokenHash(userID string) (string, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return "", err
	}
	return user.RefreshTokenHash, nil
}

// UpdateProfile applies the non-nil fields of update.
func (s *userService) UpdateProfile(userID string, update ProfileUpdate) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if update.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*update.FullName)
	}
	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		if username != user.Username {
			var count int64
			if err := s.db.Model(&models.User{}).Where("username = ? AND id <> ?", username, userID).Count(&count).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if count > 0 {
				return nil, apperrors.ErrDuplicateUsername
			}
		}
		updates["username"] = username
	}
	if update.MonthlySalary != nil {
		if update.MonthlySalary.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly salary cannot be negative")
		}
		updates["monthly_salary"] = *update.MonthlySalary
	}
	if update.Currency != nil {
		updates["currency"] = *update.Currency
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return s.GetUserByID(userID)
}

// ChangePassword replaces the password after checking the current one.
func (s *userService) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}
	if !s.VerifyPassword(user, currentPassword) {
		return apperrors.WithMessage(apperrors.ErrInvalidCredentials, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Model(user).Updates(map[string]interface{}{
		"password":           string(hashed),
		"refresh_token_hash": "",
	}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// newVerifyCode returns a random 7-digit code.
func newVerifyCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%07d", n.Int64()+1_000_000), nil
}
