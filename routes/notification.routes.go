package routes

import (
	"resumatch/internal/controllers"
	"resumatch/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterNotificationRoutes(router *gin.Engine, notificationController *controllers.NotificationController) {
	notificationRoutes := router.Group("/notifications")
	notificationRoutes.Use(middleware.AuthMiddleware())
	{
		notificationRoutes.GET("", notificationController.ListNotifications)
		notificationRoutes.POST("/mark-read", notificationController.MarkRead)
	}
}
