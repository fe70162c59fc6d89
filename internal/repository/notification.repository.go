package repository

import (
	"resumatch/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByUserEmail(email string) ([]models.Notification, error)
	MarkRead(email string, ids []uint) (int64, error)
	CountUnread(email string) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (nr *notificationRepository) Create(notification *models.Notification) error {
	return nr.db.Create(notification).Error
}

func (nr *notificationRepository) FindByUserEmail(email string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := nr.db.Where("user_email = ?", email).Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

// MarkRead only touches rows owned by the email; IDs belonging to other
// users are silently skipped.
func (nr *notificationRepository) MarkRead(email string, ids []uint) (int64, error) {
	result := nr.db.Model(&models.Notification{}).
		Where("user_email = ? AND id IN ?", email, ids).
		Update("read", true)
	return result.RowsAffected, result.Error
}

func (nr *notificationRepository) CountUnread(email string) (int64, error) {
	var count int64
	err := nr.db.Model(&models.Notification{}).
		Where("user_email = ? AND read = ?", email, false).
		Count(&count).Error
	return count, err
}
