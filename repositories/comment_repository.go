package repositories

import (
	"channelhub/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	ListVisibleByArticle(articleID uint) ([]models.CommentView, error)
	GetByArticleAndID(articleID, commentID uint) (*models.Comment, error)
	Delete(comment *models.Comment) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListVisibleByArticle hides comments from deactivated authors.
func (r *commentRepository) ListVisibleByArticle(articleID uint) ([]models.CommentView, error) {
	var comments []models.CommentView
	err := r.db.Model(&models.Comment{}).
		Joins("JOIN users ON users.id = comments.author_id").
		Where("comments.article_id = ?", articleID).
		Where("users.is_active = ?", true).
		Select(
			"comments.id as id",
			"users.username as author",
			"comments.body as content",
			"comments.created_at as time",
		).
		Order("comments.created_at asc").
		Scan(&comments).Error
	return comments, err
}

func (r *commentRepository) GetByArticleAndID(articleID, commentID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ? AND article_id = ?", commentID, articleID).
		First(&comment).Error
	return &comment, err
}

// Delete removes the row outright; comments have no soft-disable.
func (r *commentRepository) Delete(comment *models.Comment) error {
	return r.db.Delete(comment).Error
}
