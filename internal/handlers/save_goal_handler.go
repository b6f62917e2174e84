package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finwise/internal/services"
)

// SaveGoalHandler handles the savings goal
type SaveGoalHandler struct {
	saveGoalService services.SaveGoalServicer
	auditService    services.AuditServicer
}

// NewSaveGoalHandler creates a new SaveGoalHandler
func NewSaveGoalHandler(saveGoalService services.SaveGoalServicer, auditService services.AuditServicer) *SaveGoalHandler {
	return &SaveGoalHandler{
		saveGoalService: saveGoalService,
		auditService:    auditService,
	}
}

// SaveGoalRequest carries the target amount
type SaveGoalRequest struct {
	GoalAmount decimal.Decimal `json:"goal_amount" binding:"gt=0"`
}

// SetGoal creates the savings goal or updates its amount
// @Summary     Set savings goal
// @Description Create the goal starting now, or change the amount of the existing one
// @Tags        save-goal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SaveGoalRequest true "Goal amount"
// @Success     200 {object} map[string]interface{} "Goal updated"
// @Success     201 {object} map[string]interface{} "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /save-goal [post]
func (h *SaveGoalHandler) SetGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	goal, created, err := h.saveGoalService.SetGoal(c.Request.Context(), userID, req.GoalAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		h.auditService.Log(userID, "CREATE_SAVE_GOAL", "save_goal", goal.ID, c.ClientIP(),
			map[string]interface{}{"goal_amount": goal.GoalAmount.String()})
	}

	c.JSON(status, gin.H{"save_goal": goal})
}

// GetGoal returns the savings goal with its current projection
// @Summary     Get savings goal
// @Description Get the goal and what has been saved since it started
// @Tags        save-goal
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Goal"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /save-goal [get]
func (h *SaveGoalHandler) GetGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.saveGoalService.GetGoal(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"save_goal": goal})
}

// ResetGoal restarts the goal from now with a new amount
// @Summary     Reset savings goal
// @Description Restart the goal from now with a new amount
// @Tags        save-goal
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SaveGoalRequest true "Goal amount"
// @Success     200 {object} map[string]interface{} "Goal reset"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /save-goal/reset [put]
func (h *SaveGoalHandler) ResetGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	goal, err := h.saveGoalService.ResetGoal(c.Request.Context(), userID, req.GoalAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "RESET_SAVE_GOAL", "save_goal", goal.ID, c.ClientIP(),
		map[string]interface{}{"goal_amount": goal.GoalAmount.String()})

	c.JSON(http.StatusOK, gin.H{"save_goal": goal})
}
