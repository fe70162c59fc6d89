package controllers

import (
	"net/http"

	"resumatch/internal/middleware"
	"resumatch/internal/repository"

	"github.com/gin-gonic/gin"
)

type MarkReadRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

type NotificationController struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationController(notificationRepo repository.NotificationRepository) *NotificationController {
	return &NotificationController{notificationRepo: notificationRepo}
}

// ListNotifications godoc
// @Summary List the caller's notifications, newest first
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{} "Notifications"
// @Router /notifications [get]
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	email := middleware.UserEmail(c)

	notifications, err := nc.notificationRepo.FindByUserEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to list notifications",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notifications retrieved successfully",
		"data":    notifications,
	})
}

// MarkRead godoc
// @Summary Mark a batch of notifications as read
// @Description Only notifications owned by the caller are touched
// @Tags notifications
// @Accept json
// @Produce json
// @Param ids body MarkReadRequest true "Notification IDs"
// @Success 200 {object} map[string]interface{} "Marked read"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /notifications/mark-read [post]
func (nc *NotificationController) MarkRead(c *gin.Context) {
	email := middleware.UserEmail(c)

	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	updated, err := nc.notificationRepo.MarkRead(email, req.IDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to mark notifications as read",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Notifications marked as read",
		"data":    gin.H{"updated": updated},
	})
}
