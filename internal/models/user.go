package models

import (
	"time"

	"gorm.io/gorm"
)

// @description User model
type User struct {
	ID                uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt         time.Time      `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt         time.Time      `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
	FullName          string         `json:"full_name" example:"Jane Doe"`
	Email             string         `gorm:"unique" json:"email" example:"jane@example.com"`
	Password          string         `json:"-"`
	DateOfBirth       string         `json:"date_of_birth" example:"01-01-2000"`
	ProfileCompletion int            `json:"profile_completion" example:"60"`
}
