package models

import (
	"time"

	"gorm.io/gorm"
)

// @description Job posting model
type JobPost struct {
	ID              uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt       time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	Title           string         `json:"title" example:"Backend Engineer"`
	Company         string         `json:"company" example:"Acme Corp"`
	Location        string         `json:"location" example:"Berlin"`
	Description     string         `gorm:"type:text" json:"description"`
	Requirements    string         `gorm:"type:text" json:"requirements" example:"Go\nPostgreSQL"`
	ExperienceYears int            `json:"experience_years" example:"3"`
	ResumeID        *uint          `json:"resume_id,omitempty" example:"1"`
}
