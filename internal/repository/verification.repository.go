package repository

import (
	"log"
	"time"

	"resumatch/internal/models"

	"gorm.io/gorm"
)

type VerificationRepository interface {
	Upsert(verification *models.Verification) error
	FindByEmail(email string) (*models.Verification, error)
	UpdateCode(email, code string, expiresAt time.Time) error
	DeleteByEmail(email string) error
	DeleteExpired(now time.Time) (int64, error)
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

// Upsert replaces any pending verification for the email so at most one row
// per email exists. Delete and create run in one transaction.
func (vr *verificationRepository) Upsert(verification *models.Verification) error {
	return vr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("email = ?", verification.Email).
			Delete(&models.Verification{}).Error; err != nil {
			return err
		}
		return tx.Create(verification).Error
	})
}

func (vr *verificationRepository) FindByEmail(email string) (*models.Verification, error) {
	var verification models.Verification
	err := vr.db.Where("email = ?", email).First(&verification).Error
	if err != nil {
		return nil, err
	}
	return &verification, nil
}

// UpdateCode overwrites the code and expiry in place; the previous code is
// invalid the moment this commits.
func (vr *verificationRepository) UpdateCode(email, code string, expiresAt time.Time) error {
	result := vr.db.Model(&models.Verification{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{"code": code, "expires_at": expiresAt})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (vr *verificationRepository) DeleteByEmail(email string) error {
	result := vr.db.Unscoped().Where("email = ?", email).Delete(&models.Verification{})
	if result.Error != nil {
		log.Println("Error deleting verification:", result.Error)
	}
	return result.Error
}

// DeleteExpired purges pending verifications whose code has lapsed.
func (vr *verificationRepository) DeleteExpired(now time.Time) (int64, error) {
	result := vr.db.Unscoped().Where("expires_at < ?", now).Delete(&models.Verification{})
	return result.RowsAffected, result.Error
}
