package models

import (
	"time"

	"gorm.io/gorm"
)

// Verification holds a pending registration: the account fields stay here
// until the emailed code is confirmed, only then does a User row exist.
type Verification struct {
	ID          uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Email       string         `gorm:"unique" json:"email" example:"jane@example.com"`
	Code        string         `json:"code" example:"123456"`
	FullName    string         `json:"full_name" example:"Jane Doe"`
	Password    string         `json:"-"`
	DateOfBirth string         `json:"date_of_birth" example:"01-01-2000"`
	ExpiresAt   time.Time      `json:"expires_at" example:"2023-01-01T00:00:00Z"`
}

// Expired reports whether the code can no longer be redeemed.
func (v *Verification) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
