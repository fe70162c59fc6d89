package controllers

import (
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"resumatch/internal/middleware"
	"resumatch/internal/models"
	"resumatch/internal/repository"
	"resumatch/internal/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

const pdfMimeType = "application/pdf"

type ProfileRequest struct {
	Skills     string `json:"skills"`
	Education  string `json:"education"`
	Experience string `json:"experience"`
	Links      string `json:"links"`
	Summary    string `json:"summary"`
}

type ResumeController struct {
	resumeRepo       repository.ResumeRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	activityRepo     repository.ActivityRepository
	maxUploadBytes   int64
	uploadDir        string
}

func NewResumeController(
	resumeRepo repository.ResumeRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	activityRepo repository.ActivityRepository,
) *ResumeController {
	return &ResumeController{
		resumeRepo:       resumeRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		activityRepo:     activityRepo,
		maxUploadBytes:   utils.GetEnvInt64("MAX_RESUME_UPLOAD_BYTES", 2<<20),
		uploadDir:        utils.GetEnv("UPLOAD_DIR", "uploads"),
	}
}

// UploadResume godoc
// @Summary Upload a PDF resume
// @Description Validates the file, extracts its text and stores it as the user's active resume. Re-uploads overwrite.
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF resume"
// @Success 201 {object} map[string]interface{} "Resume processed"
// @Failure 400 {object} map[string]interface{} "Missing file or not a PDF"
// @Failure 413 {object} map[string]interface{} "File exceeds the size ceiling"
// @Failure 500 {object} map[string]interface{} "Extraction or storage failure"
// @Router /upload_resume [post]
func (rc *ResumeController) UploadResume(c *gin.Context) {
	email := middleware.UserEmail(c)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "File is required",
			"error":   "No file part in the request",
		})
		return
	}
	defer file.Close()

	if header.Size > 0 && header.Size > rc.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"status":  "error",
			"message": "File is too large",
			"error":   "Resume exceeds the upload size limit",
		})
		return
	}

	// Sniff the content before anything touches disk; the filename is not
	// trusted.
	buffer := make([]byte, 512)
	bytesRead, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Error reading file",
			"error":   err.Error(),
		})
		return
	}
	if bytesRead == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "File is empty",
			"error":   "No file selected",
		})
		return
	}

	detected := mimetype.Detect(buffer[:bytesRead]).String()
	if detected != pdfMimeType {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid file format. Only PDFs are allowed",
			"error":   "Detected type: " + detected,
		})
		return
	}

	if _, err := file.Seek(0, 0); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Error resetting file pointer",
			"error":   err.Error(),
		})
		return
	}

	if err := os.MkdirAll(rc.uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Error creating upload directory",
			"error":   err.Error(),
		})
		return
	}

	tempFile, err := os.CreateTemp(rc.uploadDir, ".incoming-*.pdf")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Error preparing upload file",
			"error":   err.Error(),
		})
		return
	}

	// The temp artifact never survives the request, whatever exit path is
	// taken below.
	tempPath := tempFile.Name()
	defer func() {
		if removeErr := os.Remove(tempPath); removeErr != nil && !os.IsNotExist(removeErr) {
			log.Printf("Failed to remove temp upload %s: %v", tempPath, removeErr)
		}
	}()

	written, err := io.Copy(tempFile, io.LimitReader(file, rc.maxUploadBytes+1))
	if err != nil {
		tempFile.Close()
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Error reading uploaded file",
			"error":   err.Error(),
		})
		return
	}
	if err := tempFile.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Error finalizing uploaded file",
			"error":   err.Error(),
		})
		return
	}
	if written > rc.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"status":  "error",
			"message": "File is too large",
			"error":   "Resume exceeds the upload size limit",
		})
		return
	}

	text, err := utils.ExtractPDFText(tempPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Error extracting text from PDF",
			"error":   err.Error(),
		})
		return
	}

	resume := &models.Resume{
		UserEmail: email,
		FileName:  filepath.Base(header.Filename),
		FullText:  text,
		Source:    models.ResumeSourceUpload,
	}

	if err := rc.resumeRepo.UpsertByOwner(resume); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store resume",
			"error":   "Database error",
		})
		return
	}

	rc.refreshCompletion(email, resume)
	rc.notify(email, "Your resume was uploaded and processed", models.NotificationTypeResume)
	rc.recordActivity(email, models.ActivityResumeUploaded, resume.FileName)

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Resume uploaded and processed successfully",
		"data":    gin.H{"resume_id": resume.ID},
	})
}

// SaveProfile godoc
// @Summary Create or update the manual profile
// @Description Upserts the structured resume fields and re-renders the full text
// @Tags resumes
// @Accept json
// @Produce json
// @Param profile body ProfileRequest true "Profile fields"
// @Success 200 {object} map[string]interface{} "Profile saved"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /profile [post]
func (rc *ResumeController) SaveProfile(c *gin.Context) {
	email := middleware.UserEmail(c)

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	resume := &models.Resume{
		UserEmail:  email,
		Skills:     req.Skills,
		Education:  req.Education,
		Experience: req.Experience,
		Links:      req.Links,
		Summary:    req.Summary,
		Source:     models.ResumeSourceManual,
	}
	resume.FullText = utils.RenderResumeText(resume)

	if err := rc.resumeRepo.UpsertByOwner(resume); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store profile",
			"error":   "Database error",
		})
		return
	}

	completion := rc.refreshCompletion(email, resume)
	rc.recordActivity(email, models.ActivityProfileUpdated, "")

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile saved successfully",
		"data": gin.H{
			"resume_id":          resume.ID,
			"profile_completion": completion,
		},
	})
}

// GetProfile godoc
// @Summary Get the current user's resume profile
// @Tags resumes
// @Produce json
// @Success 200 {object} map[string]interface{} "Profile"
// @Failure 404 {object} map[string]interface{} "No resume on file"
// @Router /profile [get]
func (rc *ResumeController) GetProfile(c *gin.Context) {
	email := middleware.UserEmail(c)

	resume, err := rc.resumeRepo.FindByOwner(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "No resume on file",
			"error":   "Upload a resume or fill in the profile first",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data": gin.H{
			"resume":             resume,
			"profile_completion": utils.CompletionPercent(resume),
		},
	})
}

// ListResumes godoc
// @Summary List the current user's resumes
// @Tags resumes
// @Produce json
// @Success 200 {object} map[string]interface{} "Resumes"
// @Router /resumes [get]
func (rc *ResumeController) ListResumes(c *gin.Context) {
	email := middleware.UserEmail(c)

	resumes, err := rc.resumeRepo.FindAllByOwner(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to list resumes",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Resumes retrieved successfully",
		"data":    resumes,
	})
}

// UpdateResume godoc
// @Summary Update resume fields by ID
// @Tags resumes
// @Accept json
// @Produce json
// @Param id path int true "Resume ID"
// @Param profile body ProfileRequest true "Updated fields"
// @Success 200 {object} map[string]interface{} "Resume updated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Resume belongs to another user"
// @Failure 404 {object} map[string]interface{} "Resume not found"
// @Router /resumes/{id} [put]
func (rc *ResumeController) UpdateResume(c *gin.Context) {
	email := middleware.UserEmail(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid resume ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	resume, err := rc.resumeRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Resume not found",
			"error":   "No resume exists with the provided ID",
		})
		return
	}

	if resume.UserEmail != email {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Resume belongs to another user",
			"error":   "Forbidden",
		})
		return
	}

	resume.Skills = req.Skills
	resume.Education = req.Education
	resume.Experience = req.Experience
	resume.Links = req.Links
	resume.Summary = req.Summary
	resume.Source = models.ResumeSourceManual
	resume.FullText = utils.RenderResumeText(resume)

	if err := rc.resumeRepo.Update(resume); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update resume",
			"error":   "Database error",
		})
		return
	}

	completion := rc.refreshCompletion(email, resume)
	rc.recordActivity(email, models.ActivityProfileUpdated, "")

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Resume updated successfully",
		"data": gin.H{
			"resume":             resume,
			"profile_completion": completion,
		},
	})
}

func (rc *ResumeController) refreshCompletion(email string, resume *models.Resume) int {
	completion := utils.CompletionPercent(resume)
	if err := rc.userRepo.UpdateProfileCompletion(email, completion); err != nil {
		log.Printf("Failed to update profile completion for %s: %v", email, err)
	}
	return completion
}

func (rc *ResumeController) notify(email, message, notificationType string) {
	notification := &models.Notification{
		UserEmail: email,
		Message:   message,
		Type:      notificationType,
	}
	if err := rc.notificationRepo.Create(notification); err != nil {
		log.Printf("Failed to create notification for %s: %v", email, err)
	}
}

func (rc *ResumeController) recordActivity(email, action, detail string) {
	activity := &models.Activity{UserEmail: email, Action: action, Detail: detail}
	if err := rc.activityRepo.Create(activity); err != nil {
		log.Printf("Failed to record %s activity for %s: %v", action, email, err)
	}
}
