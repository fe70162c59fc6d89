package repository

import (
	"resumatch/internal/models"

	"gorm.io/gorm"
)

type JobRepository interface {
	Create(job *models.JobPost) error
	FindAll() ([]models.JobPost, error)
	FindByID(id uint) (*models.JobPost, error)
	Count() (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (jr *jobRepository) Create(job *models.JobPost) error {
	return jr.db.Create(job).Error
}

func (jr *jobRepository) FindAll() ([]models.JobPost, error) {
	var jobs []models.JobPost
	err := jr.db.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (jr *jobRepository) FindByID(id uint) (*models.JobPost, error) {
	var job models.JobPost
	err := jr.db.First(&job, id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (jr *jobRepository) Count() (int64, error) {
	var count int64
	err := jr.db.Model(&models.JobPost{}).Count(&count).Error
	return count, err
}
