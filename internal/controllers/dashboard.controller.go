package controllers

import (
	"log"
	"net/http"

	"resumatch/internal/middleware"
	"resumatch/internal/repository"

	"github.com/gin-gonic/gin"
)

const recentActivityLimit = 10

type DashboardController struct {
	userRepo         repository.UserRepository
	resumeRepo       repository.ResumeRepository
	jobRepo          repository.JobRepository
	notificationRepo repository.NotificationRepository
	activityRepo     repository.ActivityRepository
}

func NewDashboardController(
	userRepo repository.UserRepository,
	resumeRepo repository.ResumeRepository,
	jobRepo repository.JobRepository,
	notificationRepo repository.NotificationRepository,
	activityRepo repository.ActivityRepository,
) *DashboardController {
	return &DashboardController{
		userRepo:         userRepo,
		resumeRepo:       resumeRepo,
		jobRepo:          jobRepo,
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
	}
}

// GetDashboard godoc
// @Summary Aggregated view for the current user
// @Description User fields, profile completion, resume presence, job count, unread notifications and recent activity in one response
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Dashboard"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	email := middleware.UserEmail(c)

	user, err := dc.userRepo.GetUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user associated with this session",
		})
		return
	}

	hasResume := true
	if _, err := dc.resumeRepo.FindByOwner(email); err != nil {
		hasResume = false
	}

	jobCount, err := dc.jobRepo.Count()
	if err != nil {
		log.Printf("Failed to count jobs: %v", err)
	}

	unread, err := dc.notificationRepo.CountUnread(email)
	if err != nil {
		log.Printf("Failed to count unread notifications for %s: %v", email, err)
	}

	activities, err := dc.activityRepo.FindRecentByUserEmail(email, recentActivityLimit)
	if err != nil {
		log.Printf("Failed to load recent activities for %s: %v", email, err)
	}

	activityCount, err := dc.activityRepo.CountByUserEmail(email)
	if err != nil {
		log.Printf("Failed to count activities for %s: %v", email, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Dashboard retrieved successfully",
		"data": gin.H{
			"user": gin.H{
				"id":                 user.ID,
				"full_name":          user.FullName,
				"email":              user.Email,
				"date_of_birth":      user.DateOfBirth,
				"profile_completion": user.ProfileCompletion,
			},
			"has_resume":           hasResume,
			"job_count":            jobCount,
			"unread_notifications": unread,
			"recent_activities":    activities,
			"activity_count":       activityCount,
		},
	})
}
