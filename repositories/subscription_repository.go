package repositories

import (
	"channelhub/models"

	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(sub *models.Subscription) error
	Exists(userID, channelID uint) (bool, error)
	Delete(userID, channelID uint) (int64, error)
	CountByChannel(channelID uint) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(sub *models.Subscription) error {
	return r.db.Create(sub).Error
}

func (r *subscriptionRepository) Exists(userID, channelID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("user_id = ? AND channel_id = ?", userID, channelID).
		Count(&count).Error
	return count > 0, err
}

func (r *subscriptionRepository) Delete(userID, channelID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND channel_id = ?", userID, channelID).
		Delete(&models.Subscription{})
	return result.RowsAffected, result.Error
}

func (r *subscriptionRepository) CountByChannel(channelID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}
