package repositories

import (
	"channelhub/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(fav *models.Favorite) error
	Exists(userID, articleID uint) (bool, error)
	Delete(userID, articleID uint) (int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(fav *models.Favorite) error {
	return r.db.Create(fav).Error
}

func (r *favoriteRepository) Exists(userID, articleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).Error
	return count > 0, err
}

func (r *favoriteRepository) Delete(userID, articleID uint) (int64, error) {
	result := r.db.Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&models.Favorite{})
	return result.RowsAffected, result.Error
}
