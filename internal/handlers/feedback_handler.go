package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finwise/internal/services"
)

// FeedbackHandler handles generated spending feedback
type FeedbackHandler struct {
	feedbackService services.FeedbackServicer
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(feedbackService services.FeedbackServicer) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// FeedbackRequest is the period to review
type FeedbackRequest struct {
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

// GenerateFeedback asks the model for advice on a period's spending
// @Summary     Spending feedback
// @Description Generated advice based on category totals, salary and the savings goal
// @Tags        feedback
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body FeedbackRequest true "Period"
// @Success     200 {object} services.Feedback "Feedback"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Savings goal not found"
// @Failure     502 {object} ErrorResponse "Feedback provider unavailable"
// @Failure     503 {object} ErrorResponse "Feedback not configured"
// @Router      /feedback [post]
func (h *FeedbackHandler) GenerateFeedback(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, err)
		return
	}

	feedback, err := h.feedbackService.GenerateFeedback(c.Request.Context(), userID, req.StartDate.UTC(), req.EndDate.UTC())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": feedback})
}
