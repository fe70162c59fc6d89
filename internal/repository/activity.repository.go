package repository

import (
	"resumatch/internal/models"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(activity *models.Activity) error
	FindRecentByUserEmail(email string, limit int) ([]models.Activity, error)
	CountByUserEmail(email string) (int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db}
}

func (r *activityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepository) FindRecentByUserEmail(email string, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("user_email = ?", email).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) CountByUserEmail(email string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Activity{}).Where("user_email = ?", email).Count(&count).Error
	return count, err
}
