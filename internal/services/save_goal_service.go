package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finwise/internal/analytics"
	apperrors "finwise/internal/errors"
	"finwise/internal/models"
)

// saveGoalService manages the savings goal and its projection.
type saveGoalService struct {
	db        *gorm.DB
	analytics AnalyticsServicer
	now       func() time.Time
}

// NewSaveGoalService creates a new SaveGoalServicer.
func NewSaveGoalService(db *gorm.DB, analyticsSvc AnalyticsServicer) SaveGoalServicer {
	return &saveGoalService{db: db, analytics: analyticsSvc, now: utcNow}
}

// SetGoal creates the goal starting now, or changes the amount of the existing
// one. The boolean reports whether a goal was created. A new goal reports its
// savings floored at zero; an updated goal reports the running projection.
func (s *saveGoalService) SetGoal(ctx context.Context, userID string, goalAmount decimal.Decimal) (*models.SaveGoal, bool, error) {
	if !goalAmount.IsPositive() {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal amount must be greater than zero")
	}

	goal, err := s.find(userID)
	switch {
	case errors.Is(err, apperrors.ErrSaveGoalNotFound):
		start := s.now()
		projection, err := s.analytics.CurrentSave(ctx, userID, start)
		if err != nil {
			return nil, false, err
		}
		goal = &models.SaveGoal{UserID: userID, GoalAmount: goalAmount, StartDate: start}
		if err := s.db.Create(goal).Error; err != nil {
			return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		goal.CurrentSave = analytics.InitialSavings(projection)
		return goal, true, nil
	case err != nil:
		return nil, false, err
	}

	if err := s.db.Model(goal).Update("goal_amount", goalAmount).Error; err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	goal.GoalAmount = goalAmount
	if goal.CurrentSave, err = s.analytics.CurrentSave(ctx, userID, goal.StartDate); err != nil {
		return nil, false, err
	}
	return goal, false, nil
}

// GetGoal returns the goal with its unfloored savings projection.
func (s *saveGoalService) GetGoal(ctx context.Context, userID string) (*models.SaveGoal, error) {
	goal, err := s.find(userID)
	if err != nil {
		return nil, err
	}
	if goal.CurrentSave, err = s.analytics.CurrentSave(ctx, userID, goal.StartDate); err != nil {
		return nil, err
	}
	return goal, nil
}

// ResetGoal restarts the goal now with a new amount.
func (s *saveGoalService) ResetGoal(ctx context.Context, userID string, goalAmount decimal.Decimal) (*models.SaveGoal, error) {
	if !goalAmount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal amount must be greater than zero")
	}

	goal, err := s.find(userID)
	if err != nil {
		return nil, err
	}

	start := s.now()
	if err := s.db.Model(goal).Updates(map[string]interface{}{
		"goal_amount": goalAmount,
		"start_date":  start,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	goal.GoalAmount = goalAmount
	goal.StartDate = start

	projection, err := s.analytics.CurrentSave(ctx, userID, start)
	if err != nil {
		return nil, err
	}
	goal.CurrentSave = analytics.InitialSavings(projection)
	return goal, nil
}

func (s *saveGoalService) find(userID string) (*models.SaveGoal, error) {
	var goal models.SaveGoal
	if err := s.db.Where("user_id = ?", userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSaveGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}
