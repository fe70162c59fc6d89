package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ResumeSourceUpload = "upload"
	ResumeSourceManual = "manual"
)

// Resume is the single active resume per user, keyed by owner email.
// Uploads and manual profile entries both upsert into this row.
type Resume struct {
	ID         uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt  time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt  time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	UserEmail  string         `gorm:"unique" json:"user_email" example:"jane@example.com"`
	FileName   string         `json:"file_name" example:"resume.pdf"`
	Skills     string         `gorm:"type:text" json:"skills" example:"Go, SQL, Docker"`
	Education  string         `gorm:"type:text" json:"education" example:"BSc Computer Science"`
	Experience string         `gorm:"type:text" json:"experience" example:"Backend engineer, 3 years"`
	Links      string         `gorm:"type:text" json:"links" example:"https://github.com/janedoe"`
	Summary    string         `gorm:"type:text" json:"summary" example:"Backend engineer focused on Go services"`
	FullText   string         `gorm:"type:text" json:"full_text"`
	Source     string         `json:"source" example:"upload"`
}
