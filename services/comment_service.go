package services

import (
	"errors"

	"channelhub/models"
	"channelhub/repositories"

	"gorm.io/gorm"
)

type CommentService interface {
	PostComment(articleID uint, req models.PostCommentRequest, actingUser string) (*models.Comment, error)
	ListComments(articleID uint) ([]models.CommentView, error)
	DeleteComment(articleID, commentID uint, actingUser string) (string, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	userRepo    repositories.UserRepository
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	articleRepo repositories.ArticleRepository,
	userRepo repositories.UserRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

func (s *commentService) PostComment(articleID uint, req models.PostCommentRequest, actingUser string) (*models.Comment, error) {
	user, err := resolveUser(s.userRepo, actingUser)
	if err != nil {
		return nil, err
	}

	if req.Comment == "" {
		return nil, models.ErrorInvalidInput{Message: "empty comment"}
	}
	if len(req.Comment) > models.MaxCommentBodyLen {
		return nil, models.ErrorFieldTooLong{Field: "comment", Max: models.MaxCommentBodyLen}
	}

	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "what article?"}
		}
		return nil, err
	}

	comment := &models.Comment{
		Body:      req.Comment,
		AuthorID:  user.ID,
		ArticleID: article.ID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) ListComments(articleID uint) ([]models.CommentView, error) {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "what article?"}
		}
		return nil, err
	}

	return s.commentRepo.ListVisibleByArticle(articleID)
}

// DeleteComment removes the comment outright; comments are the one entity
// kind with hard deletion instead of a disable flag.
func (s *commentService) DeleteComment(articleID, commentID uint, actingUser string) (string, error) {
	if _, err := requireAdmin(s.userRepo, actingUser); err != nil {
		return "", err
	}

	comment, err := s.commentRepo.GetByArticleAndID(articleID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.ErrorNotFound{Message: "no such comment"}
		}
		return "", err
	}

	if err := s.commentRepo.Delete(comment); err != nil {
		return "", err
	}

	return "comment deleted", nil
}
