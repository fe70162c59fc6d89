package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	NotificationTypeInfo   = "info"
	NotificationTypeResume = "resume"
	NotificationTypeJob    = "job"
)

// @description Notification model
type Notification struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserEmail string         `gorm:"index" json:"user_email" example:"jane@example.com"`
	Message   string         `json:"message" example:"Your resume was processed"`
	Type      string         `json:"type" example:"resume"`
	JobID     *uint          `json:"job_id,omitempty" example:"1"`
	Read      bool           `gorm:"default:false" json:"read"`
}
