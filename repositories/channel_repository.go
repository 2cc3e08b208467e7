package repositories

import (
	"channelhub/models"

	"gorm.io/gorm"
)

type ChannelRepository interface {
	Create(channel *models.Channel) error
	GetByID(id uint) (*models.Channel, error)
	GetActiveByID(id uint) (*models.Channel, error)
	GetByName(name string) (*models.Channel, error)
	GetAllActive() ([]models.Channel, error)
	Update(channel *models.Channel) error
}

type channelRepository struct {
	db *gorm.DB
}

func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &channelRepository{db: db}
}

func (r *channelRepository) Create(channel *models.Channel) error {
	return r.db.Create(channel).Error
}

func (r *channelRepository) GetByID(id uint) (*models.Channel, error) {
	var channel models.Channel
	err := r.db.First(&channel, id).Error
	return &channel, err
}

// GetActiveByID resolves a channel only if it has not been disabled; a
// disabled channel is indistinguishable from a missing one.
func (r *channelRepository) GetActiveByID(id uint) (*models.Channel, error) {
	var channel models.Channel
	err := r.db.Where("id = ? AND status & ? = 0", id, models.StatusDisabled).
		First(&channel).Error
	return &channel, err
}

func (r *channelRepository) GetByName(name string) (*models.Channel, error) {
	var channel models.Channel
	err := r.db.Where("name = ?", name).First(&channel).Error
	return &channel, err
}

func (r *channelRepository) GetAllActive() ([]models.Channel, error) {
	var channels []models.Channel
	err := r.db.Where("status & ? = 0", models.StatusDisabled).
		Order("created_at desc").
		Find(&channels).Error
	return channels, err
}

func (r *channelRepository) Update(channel *models.Channel) error {
	return r.db.Save(channel).Error
}
