package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "finwise/internal/errors"
	"finwise/internal/models"
)

// NotificationWindow is how far back GetRecent looks.
const NotificationWindow = 30 * 24 * time.Hour

type notificationService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewNotificationService creates a new NotificationServicer.
func NewNotificationService(db *gorm.DB) NotificationServicer {
	return &notificationService{db: db, now: utcNow}
}

// GetRecent returns the user's notifications of the last 30 days, newest first.
func (s *notificationService) GetRecent(userID string) ([]models.Notification, error) {
	notifications := []models.Notification{}
	if err := s.db.Where("user_id = ? AND created_at >= ?", userID, s.now().Add(-NotificationWindow)).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return notifications, nil
}
