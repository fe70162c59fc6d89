package routes

import (
	"resumatch/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterJobRoutes(router *gin.Engine, jobController *controllers.JobController) {
	router.POST("/add-job", jobController.CreateJob)
	router.GET("/jobs", jobController.ListJobs)
	router.GET("/jobs/:id/match", jobController.MatchResume)
}
