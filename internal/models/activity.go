package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ActivityVerified       = "verified"
	ActivityLoggedIn       = "logged_in"
	ActivityPasswordReset  = "password_reset"
	ActivityResumeUploaded = "resume_uploaded"
	ActivityProfileUpdated = "profile_updated"
)

// Activity is an append-only audit trail of user actions, surfaced on the
// dashboard as "recent activity".
type Activity struct {
	ID        uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserEmail string         `gorm:"index" json:"user_email" example:"jane@example.com"`
	Action    string         `json:"action" example:"resume_uploaded"`
	Detail    string         `json:"detail" example:"resume.pdf"`
}
