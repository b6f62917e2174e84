package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finwise/internal/services"
)

// NotificationHandler serves user notifications
type NotificationHandler struct {
	notificationService services.NotificationServicer
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService services.NotificationServicer) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// GetNotifications returns the notifications of the last 30 days
// @Summary     List notifications
// @Description Notifications from the last 30 days, newest first
// @Tags        notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Notifications"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /notifications [get]
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	notifications, err := h.notificationService.GetRecent(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
