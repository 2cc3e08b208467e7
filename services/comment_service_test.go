package services

import (
	"strings"
	"testing"

	"channelhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newCommentService() (*mockCommentRepository, *mockArticleRepository, *mockUserRepository, CommentService) {
	commentRepo := new(mockCommentRepository)
	articleRepo := new(mockArticleRepository)
	userRepo := new(mockUserRepository)
	svc := NewCommentService(commentRepo, articleRepo, userRepo)
	return commentRepo, articleRepo, userRepo, svc
}

func TestPostComment(t *testing.T) {
	commentRepo, articleRepo, userRepo, svc := newCommentService()

	userRepo.On("GetActiveByUsername", "reader").Return(activeReader(), nil)
	articleRepo.On("GetByID", uint(3)).Return(&models.Article{ID: 3, Status: 1}, nil)
	commentRepo.On("Create", mock.MatchedBy(func(c *models.Comment) bool {
		return c.Body == "nice read" && c.AuthorID == 2 && c.ArticleID == 3
	})).Return(nil)

	comment, err := svc.PostComment(3, models.PostCommentRequest{Comment: "nice read"}, "reader")

	assert.NoError(t, err)
	assert.Equal(t, "nice read", comment.Body)
	commentRepo.AssertExpectations(t)
}

func TestPostEmptyComment(t *testing.T) {
	commentRepo, _, userRepo, svc := newCommentService()

	userRepo.On("GetActiveByUsername", "reader").Return(activeReader(), nil)

	_, err := svc.PostComment(3, models.PostCommentRequest{Comment: ""}, "reader")

	assert.IsType(t, models.ErrorInvalidInput{}, err)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestPostCommentTooLong(t *testing.T) {
	commentRepo, _, userRepo, svc := newCommentService()

	userRepo.On("GetActiveByUsername", "reader").Return(activeReader(), nil)

	_, err := svc.PostComment(3, models.PostCommentRequest{
		Comment: strings.Repeat("x", models.MaxCommentBodyLen+1),
	}, "reader")

	var tooLong models.ErrorFieldTooLong
	assert.ErrorAs(t, err, &tooLong)
	assert.Equal(t, models.MaxCommentBodyLen, tooLong.Max)
	commentRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDeleteCommentRequiresAdmin(t *testing.T) {
	commentRepo, _, userRepo, svc := newCommentService()

	userRepo.On("GetActiveByUsername", "reader").Return(activeReader(), nil)

	_, err := svc.DeleteComment(3, 8, "reader")

	assert.IsType(t, models.ErrorUnauthorized{}, err)
	commentRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteComment(t *testing.T) {
	commentRepo, _, userRepo, svc := newCommentService()

	comment := &models.Comment{ID: 8, ArticleID: 3}
	userRepo.On("GetActiveByUsername", "boss").Return(activeAdmin(), nil)
	commentRepo.On("GetByArticleAndID", uint(3), uint(8)).Return(comment, nil)
	commentRepo.On("Delete", comment).Return(nil)

	message, err := svc.DeleteComment(3, 8, "boss")

	assert.NoError(t, err)
	assert.Equal(t, "comment deleted", message)
	commentRepo.AssertExpectations(t)
}

func TestDeleteMissingComment(t *testing.T) {
	commentRepo, _, userRepo, svc := newCommentService()

	userRepo.On("GetActiveByUsername", "boss").Return(activeAdmin(), nil)
	commentRepo.On("GetByArticleAndID", uint(3), uint(8)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.DeleteComment(3, 8, "boss")

	assert.IsType(t, models.ErrorNotFound{}, err)
	assert.EqualError(t, err, "no such comment")
}
