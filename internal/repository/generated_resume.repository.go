package repository

import (
	"resumatch/internal/models"

	"gorm.io/gorm"
)

type GeneratedResumeRepository interface {
	Create(resume *models.GeneratedResume) error
	FindAllByOwner(email string) ([]models.GeneratedResume, error)
	FindByIDAndOwner(id uint, email string) (*models.GeneratedResume, error)
	DeleteByIDAndOwner(id uint, email string) (int64, error)
}

type generatedResumeRepository struct {
	db *gorm.DB
}

func NewGeneratedResumeRepository(db *gorm.DB) GeneratedResumeRepository {
	return &generatedResumeRepository{db: db}
}

func (gr *generatedResumeRepository) Create(resume *models.GeneratedResume) error {
	return gr.db.Create(resume).Error
}

// FindAllByOwner lists the metadata only; the document payload is omitted.
func (gr *generatedResumeRepository) FindAllByOwner(email string) ([]models.GeneratedResume, error) {
	var resumes []models.GeneratedResume
	err := gr.db.
		Select("id", "created_at", "updated_at", "user_email", "file_name").
		Where("user_email = ?", email).
		Order("created_at desc").
		Find(&resumes).Error
	if err != nil {
		return nil, err
	}
	return resumes, nil
}

func (gr *generatedResumeRepository) FindByIDAndOwner(id uint, email string) (*models.GeneratedResume, error) {
	var resume models.GeneratedResume
	err := gr.db.Where("id = ? AND user_email = ?", id, email).First(&resume).Error
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// DeleteByIDAndOwner scopes the delete to the caller so a foreign ID is
// indistinguishable from a missing one.
func (gr *generatedResumeRepository) DeleteByIDAndOwner(id uint, email string) (int64, error) {
	result := gr.db.Unscoped().
		Where("id = ? AND user_email = ?", id, email).
		Delete(&models.GeneratedResume{})
	return result.RowsAffected, result.Error
}
