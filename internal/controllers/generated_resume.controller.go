package controllers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"resumatch/internal/middleware"
	"resumatch/internal/models"
	"resumatch/internal/repository"
	"resumatch/internal/utils"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

// GeneratedResumeController handles the review flow for externally produced
// resume PDFs: they are parked in the database until the user downloads or
// rejects them.
type GeneratedResumeController struct {
	generatedRepo  repository.GeneratedResumeRepository
	maxUploadBytes int64
}

func NewGeneratedResumeController(generatedRepo repository.GeneratedResumeRepository) *GeneratedResumeController {
	return &GeneratedResumeController{
		generatedRepo:  generatedRepo,
		maxUploadBytes: utils.GetEnvInt64("MAX_RESUME_UPLOAD_BYTES", 2<<20),
	}
}

// Upload godoc
// @Summary Park a generated PDF resume for review
// @Description Stores the document in the database; nothing touches disk
// @Tags generated-resumes
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Generated PDF resume"
// @Success 201 {object} map[string]interface{} "Resume parked"
// @Failure 400 {object} map[string]interface{} "Missing file or not a PDF"
// @Failure 413 {object} map[string]interface{} "File exceeds the size ceiling"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /ml/upload_resume [post]
func (gc *GeneratedResumeController) Upload(c *gin.Context) {
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

	if header.Size > 0 && header.Size > gc.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"status":  "error",
			"message": "File is too large",
			"error":   "Resume exceeds the upload size limit",
		})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, gc.maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Error reading uploaded file",
			"error":   err.Error(),
		})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "File is empty",
			"error":   "No file selected",
		})
		return
	}
	if int64(len(data)) > gc.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"status":  "error",
			"message": "File is too large",
			"error":   "Resume exceeds the upload size limit",
		})
		return
	}

	detected := mimetype.Detect(data).String()
	if detected != pdfMimeType {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid file format. Only PDFs are allowed",
			"error":   "Detected type: " + detected,
		})
		return
	}

	resume := &models.GeneratedResume{
		UserEmail: email,
		FileName:  filepath.Base(header.Filename),
		Data:      data,
	}

	if err := gc.generatedRepo.Create(resume); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to store generated resume",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Generated resume stored for review",
		"data":    gin.H{"resume_id": resume.ID},
	})
}

// List godoc
// @Summary List the caller's parked generated resumes
// @Description Metadata only; the document payload is never in the list
// @Tags generated-resumes
// @Produce json
// @Success 200 {object} map[string]interface{} "Generated resumes"
// @Router /ml/temp_resumes [get]
func (gc *GeneratedResumeController) List(c *gin.Context) {
	email := middleware.UserEmail(c)

	resumes, err := gc.generatedRepo.FindAllByOwner(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to list generated resumes",
			"error":   "Database error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Generated resumes retrieved successfully",
		"data":    resumes,
	})
}

// Download godoc
// @Summary Download a parked generated resume
// @Tags generated-resumes
// @Produce application/pdf
// @Param id path int true "Generated resume ID"
// @Success 200 {file} binary "PDF document"
// @Failure 400 {object} map[string]interface{} "Invalid resume ID"
// @Failure 404 {object} map[string]interface{} "Resume not found"
// @Router /ml/temp_resumes/{id}/download [get]
func (gc *GeneratedResumeController) Download(c *gin.Context) {
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

	resume, err := gc.generatedRepo.FindByIDAndOwner(uint(id), email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Resume not found",
			"error":   "No generated resume exists with the provided ID",
		})
		return
	}

	fileName := resume.FileName
	if fileName == "" {
		fileName = "resume.pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, pdfMimeType, resume.Data)
}

// Reject godoc
// @Summary Reject and delete a parked generated resume
// @Tags generated-resumes
// @Produce json
// @Param id path int true "Generated resume ID"
// @Success 200 {object} map[string]interface{} "Resume deleted"
// @Failure 400 {object} map[string]interface{} "Invalid resume ID"
// @Failure 404 {object} map[string]interface{} "Resume not found"
// @Router /ml/temp_resumes/{id} [delete]
func (gc *GeneratedResumeController) Reject(c *gin.Context) {
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

	deleted, err := gc.generatedRepo.DeleteByIDAndOwner(uint(id), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete generated resume",
			"error":   "Database error",
		})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Resume not found",
			"error":   "No generated resume exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Generated resume rejected and deleted",
		"data":    nil,
	})
}
