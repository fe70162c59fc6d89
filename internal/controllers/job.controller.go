package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"resumatch/internal/models"
	"resumatch/internal/repository"

	"github.com/gin-gonic/gin"
)

type JobRequest struct {
	Title           string   `json:"title" binding:"required"`
	Company         string   `json:"company" binding:"required"`
	Location        string   `json:"location" binding:"required"`
	Description     string   `json:"description" binding:"required"`
	Requirements    []string `json:"requirements" binding:"required"`
	ExperienceYears int      `json:"experience_years" binding:"gte=0"`
	ResumeID        *uint    `json:"resume_id"`
}

type JobController struct {
	jobRepo    repository.JobRepository
	resumeRepo repository.ResumeRepository
}

func NewJobController(jobRepo repository.JobRepository, resumeRepo repository.ResumeRepository) *JobController {
	return &JobController{jobRepo: jobRepo, resumeRepo: resumeRepo}
}

// CreateJob godoc
// @Summary Create a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body JobRequest true "Job details"
// @Success 201 {object} map[string]interface{} "Job created"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /add-job [post]
func (jc *JobController) CreateJob(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	job := &models.JobPost{
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		Description:     req.Description,
		Requirements:    strings.Join(req.Requirements, "\n"),
		ExperienceYears: req.ExperienceYears,
		ResumeID:        req.ResumeID,
	}

	if err := jc.jobRepo.Create(job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create job",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Job created successfully",
		"data":    gin.H{"job_id": job.ID},
	})
}

// ListJobs godoc
// @Summary List job postings, newest first
// @Tags jobs
// @Produce json
// @Success 200 {object} map[string]interface{} "Jobs"
// @Router /jobs [get]
func (jc *JobController) ListJobs(c *gin.Context) {
	jobs, err := jc.jobRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to list jobs",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Jobs retrieved successfully",
		"data":    jobs,
	})
}

// MatchResume godoc
// @Summary Look up the resume linked to a job
// @Description Returns the resume referenced by the job's resume_id; there is no scoring or ranking
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} map[string]interface{} "Linked resume"
// @Failure 400 {object} map[string]interface{} "Invalid job ID"
// @Failure 404 {object} map[string]interface{} "Job or linked resume not found"
// @Router /jobs/{id}/match [get]
func (jc *JobController) MatchResume(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid job ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	job, err := jc.jobRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Job not found",
			"error":   "No job exists with the provided ID",
		})
		return
	}

	if job.ResumeID == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No resume linked to this job",
			"error":   "The job has no resume_id",
		})
		return
	}

	resume, err := jc.resumeRepo.FindByID(*job.ResumeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Linked resume not found",
			"error":   "The referenced resume no longer exists",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Linked resume retrieved successfully",
		"data": gin.H{
			"job_id": job.ID,
			"resume": resume,
		},
	})
}
