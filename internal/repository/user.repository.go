package repository

import (
	"resumatch/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	CreateFromVerification(verification *models.Verification) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdatePassword(email, passwordHash string) error
	UpdateProfileCompletion(email string, completion int) error
	EmailExists(email string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateFromVerification materializes a User from a pending verification.
// The pending row is consumed and the user created in one transaction, keyed
// by email AND code: of two concurrent correct-code submissions only one
// delete reports an affected row, so only one User is ever created. The
// loser gets gorm.ErrRecordNotFound.
func (ur *userRepository) CreateFromVerification(verification *models.Verification) (*models.User, error) {
	user := &models.User{
		FullName:    verification.FullName,
		Email:       verification.Email,
		Password:    verification.Password,
		DateOfBirth: verification.DateOfBirth,
	}

	err := ur.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Unscoped().
			Where("email = ? AND code = ?", verification.Email, verification.Code).
			Delete(&models.Verification{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (ur *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := ur.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) UpdatePassword(email, passwordHash string) error {
	return ur.db.Model(&models.User{}).Where("email = ?", email).Update("password", passwordHash).Error
}

func (ur *userRepository) UpdateProfileCompletion(email string, completion int) error {
	return ur.db.Model(&models.User{}).Where("email = ?", email).Update("profile_completion", completion).Error
}

func (ur *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := ur.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
