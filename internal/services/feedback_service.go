package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"finwise/internal/analytics"
	apperrors "finwise/internal/errors"
	"finwise/internal/genai"
	"finwise/internal/logger"
	"finwise/internal/models"
)

// feedbackService asks a language model for advice on a period's spending.
type feedbackService struct {
	db        *gorm.DB
	analytics AnalyticsServicer
	generator genai.Generator
}

// NewFeedbackService creates a new FeedbackServicer. A nil generator disables feedback.
func NewFeedbackService(db *gorm.DB, analyticsSvc AnalyticsServicer, generator genai.Generator) FeedbackServicer {
	return &feedbackService{db: db, analytics: analyticsSvc, generator: generator}
}

// GenerateFeedback summarizes spending per category between start and end,
// both inclusive, and asks the model how the user is tracking against their goal.
func (s *feedbackService) GenerateFeedback(ctx context.Context, userID string, start, end time.Time) (*Feedback, error) {
	if s.generator == nil {
		return nil, apperrors.ErrFeedbackDisabled
	}
	if !end.After(start) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end_date must be after start_date")
	}

	var goal models.SaveGoal
	if err := s.db.Where("user_id = ?", userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSaveGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	salary, err := monthlySalary(s.db, userID)
	if err != nil {
		return nil, err
	}
	currentSave, err := s.analytics.CurrentSave(ctx, userID, goal.StartDate)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Category string
		Total    decimal.Decimal
	}
	w := analytics.Window{Start: start.UTC(), End: end.UTC(), EndInclusive: true}
	if err := s.db.WithContext(ctx).
		Model(&models.Expense{}).
		Select("category, SUM(amount) AS total").
		Where("user_id = ?", userID).
		Scopes(inWindow(w)).
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}

	categories := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		categories[r.Category] = r.Total
	}

	fb := &Feedback{
		StartDate:   start,
		EndDate:     end,
		Categories:  categories,
		CurrentSave: currentSave,
		GoalAmount:  goal.GoalAmount,
	}

	advice, err := s.generator.Generate(ctx, feedbackPrompt(fb, salary))
	if err != nil {
		logger.Get().Errorw("feedback generation failed", "error", err, "user_id", userID)
		return nil, apperrors.Wrap(apperrors.ErrFeedbackUnavailable, err)
	}
	fb.Advice = strings.TrimSpace(advice)
	return fb, nil
}

func feedbackPrompt(fb *Feedback, salary decimal.Decimal) string {
	names := make([]string, 0, len(fb.Categories))
	for name := range fb.Categories {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Here are my expenses from %s to %s:\n", fb.StartDate.Format("2006-01-02"), fb.EndDate.Format("2006-01-02"))
	if len(names) == 0 {
		b.WriteString("- no expenses recorded\n")
	}
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %s\n", name, fb.Categories[name].StringFixed(2))
	}
	fmt.Fprintf(&b, "My monthly salary is %s.\n", salary.StringFixed(2))
	fmt.Fprintf(&b, "I have saved %s so far towards a savings goal of %s.\n", fb.CurrentSave.StringFixed(2), fb.GoalAmount.StringFixed(2))
	b.WriteString("Give me short, practical feedback on my spending and whether I am on track to reach my goal.")
	return b.String()
}
