package routes

import (
	"resumatch/internal/controllers"
	"resumatch/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterGeneratedResumeRoutes(router *gin.Engine, generatedController *controllers.GeneratedResumeController) {
	generatedRoutes := router.Group("/ml")
	generatedRoutes.Use(middleware.AuthMiddleware())
	{
		generatedRoutes.POST("/upload_resume", generatedController.Upload)
		generatedRoutes.GET("/temp_resumes", generatedController.List)
		generatedRoutes.GET("/temp_resumes/:id/download", generatedController.Download)
		generatedRoutes.DELETE("/temp_resumes/:id", generatedController.Reject)
	}
}
