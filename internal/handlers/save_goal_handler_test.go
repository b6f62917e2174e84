package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finwise/internal/errors"
	"finwise/internal/models"
	"finwise/internal/services"
)

type mockSaveGoalService struct {
	setGoalFn   func(userID string, goalAmount decimal.Decimal) (*models.SaveGoal, bool, error)
	getGoalFn   func(userID string) (*models.SaveGoal, error)
	resetGoalFn func(userID string, goalAmount decimal.Decimal) (*models.SaveGoal, error)
}

var _ services.SaveGoalServicer = (*mockSaveGoalService)(nil)

func (m *mockSaveGoalService) SetGoal(_ context.Context, userID string, goalAmount decimal.Decimal) (*models.SaveGoal, bool, error) {
	if m.setGoalFn != nil {
		return m.setGoalFn(userID, goalAmount)
	}
	return &models.SaveGoal{UserID: userID, GoalAmount: goalAmount}, true, nil
}

func (m *mockSaveGoalService) GetGoal(_ context.Context, userID string) (*models.SaveGoal, error) {
	if m.getGoalFn != nil {
		return m.getGoalFn(userID)
	}
	return &models.SaveGoal{UserID: userID}, nil
}

func (m *mockSaveGoalService) ResetGoal(_ context.Context, userID string, goalAmount decimal.Decimal) (*models.SaveGoal, error) {
	if m.resetGoalFn != nil {
		return m.resetGoalFn(userID, goalAmount)
	}
	return &models.SaveGoal{UserID: userID, GoalAmount: goalAmount}, nil
}

func setupSaveGoalRouter(handler *SaveGoalHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/save-goal", injectUserID(testUserID))
	g.POST("", handler.SetGoal)
	g.GET("", handler.GetGoal)
	g.PUT("/reset", handler.ResetGoal)
	return r
}

func TestSaveGoalHandler_SetGoal(t *testing.T) {
	t.Run("returns 201 when the goal is created", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupSaveGoalRouter(NewSaveGoalHandler(&mockSaveGoalService{}, audit))
		rec := doRequest(r, http.MethodPost, "/save-goal", `{"goal_amount":5000}`)
		assertStatus(t, rec, http.StatusCreated)
		if !audit.logged("CREATE_SAVE_GOAL") {
			t.Error("expected CREATE_SAVE_GOAL audit entry")
		}
	})

	t.Run("returns 200 when the goal is updated", func(t *testing.T) {
		svc := &mockSaveGoalService{
			setGoalFn: func(userID string, amount decimal.Decimal) (*models.SaveGoal, bool, error) {
				return &models.SaveGoal{UserID: userID, GoalAmount: amount, CurrentSave: decimal.NewFromInt(-200)}, false, nil
			},
		}
		r := setupSaveGoalRouter(NewSaveGoalHandler(svc, &mockAuditService{}))
		rec := doRequest(r, http.MethodPost, "/save-goal", `{"goal_amount":6000}`)

		assertStatus(t, rec, http.StatusOK)
		goal := parseJSON(t, rec)["save_goal"].(map[string]interface{})
		if goal["current_save"] != "-200" {
			t.Errorf("expected unfloored current_save, got %v", goal["current_save"])
		}
	})

	t.Run("returns 400 on a zero amount", func(t *testing.T) {
		r := setupSaveGoalRouter(NewSaveGoalHandler(&mockSaveGoalService{}, &mockAuditService{}))
		rec := doRequest(r, http.MethodPost, "/save-goal", `{"goal_amount":0}`)
		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestSaveGoalHandler_GetGoal(t *testing.T) {
	t.Run("returns the goal", func(t *testing.T) {
		start := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
		svc := &mockSaveGoalService{
			getGoalFn: func(userID string) (*models.SaveGoal, error) {
				return &models.SaveGoal{UserID: userID, GoalAmount: decimal.NewFromInt(5000), StartDate: start, CurrentSave: decimal.NewFromInt(1300)}, nil
			},
		}
		r := setupSaveGoalRouter(NewSaveGoalHandler(svc, &mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/save-goal", "")
		assertStatus(t, rec, http.StatusOK)
		goal := parseJSON(t, rec)["save_goal"].(map[string]interface{})
		if goal["current_save"] != "1300" {
			t.Errorf("expected 1300, got %v", goal["current_save"])
		}
	})

	t.Run("returns 404 without a goal", func(t *testing.T) {
		svc := &mockSaveGoalService{
			getGoalFn: func(string) (*models.SaveGoal, error) { return nil, apperrors.ErrSaveGoalNotFound },
		}
		r := setupSaveGoalRouter(NewSaveGoalHandler(svc, &mockAuditService{}))
		rec := doRequest(r, http.MethodGet, "/save-goal", "")
		assertStatus(t, rec, http.StatusNotFound)
		assertErrorCode(t, parseJSON(t, rec), "SAVE_GOAL_NOT_FOUND")
	})
}

func TestSaveGoalHandler_ResetGoal(t *testing.T) {
	audit := &mockAuditService{}
	r := setupSaveGoalRouter(NewSaveGoalHandler(&mockSaveGoalService{}, audit))
	rec := doRequest(r, http.MethodPut, "/save-goal/reset", `{"goal_amount":"2500.00"}`)
	assertStatus(t, rec, http.StatusOK)
	if !audit.logged("RESET_SAVE_GOAL") {
		t.Error("expected RESET_SAVE_GOAL audit entry")
	}
}
