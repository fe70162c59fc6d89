package routes

import (
	"resumatch/internal/controllers"
	"resumatch/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterResumeRoutes(router *gin.Engine, resumeController *controllers.ResumeController) {
	resumeRoutes := router.Group("/")
	resumeRoutes.Use(middleware.AuthMiddleware())
	{
		resumeRoutes.POST("/upload_resume", resumeController.UploadResume)
		resumeRoutes.GET("/resumes", resumeController.ListResumes)
		resumeRoutes.PUT("/resumes/:id", resumeController.UpdateResume)
		resumeRoutes.POST("/profile", resumeController.SaveProfile)
		resumeRoutes.GET("/profile", resumeController.GetProfile)
	}
}
