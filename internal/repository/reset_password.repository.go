package repository

import (
	"log"
	"time"

	"resumatch/internal/models"

	"gorm.io/gorm"
)

type ResetPasswordRepository interface {
	Upsert(resetPassword *models.ResetPassword) error
	FindByEmailAndCode(email, code string) (*models.ResetPassword, error)
	DeleteByEmail(email string) error
	DeleteExpired(now time.Time) (int64, error)
}

type resetPasswordRepository struct {
	db *gorm.DB
}

func NewResetPasswordRepository(db *gorm.DB) ResetPasswordRepository {
	return &resetPasswordRepository{db: db}
}

func (rp *resetPasswordRepository) Upsert(resetPassword *models.ResetPassword) error {
	return rp.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("email = ?", resetPassword.Email).
			Delete(&models.ResetPassword{}).Error; err != nil {
			return err
		}
		return tx.Create(resetPassword).Error
	})
}

// FindByEmailAndCode only returns unexpired codes; an expired or wrong code
// is indistinguishable from a missing one.
func (rp *resetPasswordRepository) FindByEmailAndCode(email, code string) (*models.ResetPassword, error) {
	var resetPassword models.ResetPassword
	err := rp.db.Where("email = ? AND code = ? AND expires_at > ?", email, code, time.Now()).
		First(&resetPassword).Error
	if err != nil {
		return nil, err
	}
	return &resetPassword, nil
}

func (rp *resetPasswordRepository) DeleteByEmail(email string) error {
	result := rp.db.Unscoped().Where("email = ?", email).Delete(&models.ResetPassword{})
	if result.Error != nil {
		log.Println("Error deleting reset password record:", result.Error)
	}
	return result.Error
}

// DeleteExpired purges reset codes whose window has lapsed.
func (rp *resetPasswordRepository) DeleteExpired(now time.Time) (int64, error) {
	result := rp.db.Unscoped().Where("expires_at < ?", now).Delete(&models.ResetPassword{})
	return result.RowsAffected, result.Error
}
