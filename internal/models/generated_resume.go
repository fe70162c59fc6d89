package models

import (
	"time"

	"gorm.io/gorm"
)

// GeneratedResume is an externally produced PDF resume held for the user's
// review. The document lives in the row itself and is never written to
// disk; rows exist only until the user downloads or rejects them.
type GeneratedResume struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserEmail string         `gorm:"index" json:"user_email" example:"jane@example.com"`
	FileName  string         `json:"file_name" example:"resume.pdf"`
	Data      []byte         `gorm:"type:bytea" json:"-"`
}
