package repository

import (
	"errors"

	"resumatch/internal/models"

	"gorm.io/gorm"
)

type ResumeRepository interface {
	UpsertByOwner(resume *models.Resume) error
	FindByOwner(email string) (*models.Resume, error)
	FindByID(id uint) (*models.Resume, error)
	FindAllByOwner(email string) ([]models.Resume, error)
	Update(resume *models.Resume) error
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// UpsertByOwner keeps one active resume per user: a re-upload or profile
// edit overwrites the existing row instead of creating a second one.
func (rr *resumeRepository) UpsertByOwner(resume *models.Resume) error {
	var existing models.Resume
	err := rr.db.Where("user_email = ?", resume.UserEmail).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rr.db.Create(resume).Error
	}
	if err != nil {
		return err
	}

	resume.ID = existing.ID
	resume.CreatedAt = existing.CreatedAt
	return rr.db.Save(resume).Error
}

func (rr *resumeRepository) FindByOwner(email string) (*models.Resume, error) {
	var resume models.Resume
	err := rr.db.Where("user_email = ?", email).First(&resume).Error
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

func (rr *resumeRepository) FindByID(id uint) (*models.Resume, error) {
	var resume models.Resume
	err := rr.db.First(&resume, id).Error
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

func (rr *resumeRepository) FindAllByOwner(email string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := rr.db.Where("user_email = ?", email).Order("updated_at DESC").Find(&resumes).Error
	return resumes, err
}

func (rr *resumeRepository) Update(resume *models.Resume) error {
	return rr.db.Save(resume).Error
}
