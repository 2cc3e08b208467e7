package services

import (
	"context"
	"time"

	"channelhub/models"

	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(user *models.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) GetActiveByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) Update(user *models.User) error {
	return m.Called(user).Error(0)
}

type mockChannelRepository struct {
	mock.Mock
}

func (m *mockChannelRepository) Create(channel *models.Channel) error {
	return m.Called(channel).Error(0)
}

func (m *mockChannelRepository) GetByID(id uint) (*models.Channel, error) {
	args := m.Called(id)
	channel, _ := args.Get(0).(*models.Channel)
	return channel, args.Error(1)
}

func (m *mockChannelRepository) GetActiveByID(id uint) (*models.Channel, error) {
	args := m.Called(id)
	channel, _ := args.Get(0).(*models.Channel)
	return channel, args.Error(1)
}

func (m *mockChannelRepository) GetByName(name string) (*models.Channel, error) {
	args := m.Called(name)
	channel, _ := args.Get(0).(*models.Channel)
	return channel, args.Error(1)
}

func (m *mockChannelRepository) GetAllActive() ([]models.Channel, error) {
	args := m.Called()
	channels, _ := args.Get(0).([]models.Channel)
	return channels, args.Error(1)
}

func (m *mockChannelRepository) Update(channel *models.Channel) error {
	return m.Called(channel).Error(0)
}

type mockArticleRepository struct {
	mock.Mock
}

func (m *mockArticleRepository) Create(article *models.Article) error {
	return m.Called(article).Error(0)
}

func (m *mockArticleRepository) GetByID(id uint) (*models.Article, error) {
	args := m.Called(id)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

func (m *mockArticleRepository) GetVisibleByID(id uint) (*models.ArticleSummary, error) {
	args := m.Called(id)
	summary, _ := args.Get(0).(*models.ArticleSummary)
	return summary, args.Error(1)
}

func (m *mockArticleRepository) GetActiveByID(id uint) (*models.Article, error) {
	args := m.Called(id)
	article, _ := args.Get(0).(*models.Article)
	return article, args.Error(1)
}

func (m *mockArticleRepository) ListVisible(channelID *uint, limit int) ([]models.ArticleSummary, error) {
	args := m.Called(channelID, limit)
	summaries, _ := args.Get(0).([]models.ArticleSummary)
	return summaries, args.Error(1)
}

func (m *mockArticleRepository) ListPending(channelID *uint) ([]models.PendingArticle, error) {
	args := m.Called(channelID)
	pending, _ := args.Get(0).([]models.PendingArticle)
	return pending, args.Error(1)
}

func (m *mockArticleRepository) ListSubscriptionFeed(userID uint, limit int) ([]models.ArticleSummary, error) {
	args := m.Called(userID, limit)
	summaries, _ := args.Get(0).([]models.ArticleSummary)
	return summaries, args.Error(1)
}

func (m *mockArticleRepository) ListFavoritesFeed(userID uint, limit int) ([]models.ArticleSummary, error) {
	args := m.Called(userID, limit)
	summaries, _ := args.Get(0).([]models.ArticleSummary)
	return summaries, args.Error(1)
}

func (m *mockArticleRepository) Update(article *models.Article) error {
	return m.Called(article).Error(0)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(comment *models.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *mockCommentRepository) ListVisibleByArticle(articleID uint) ([]models.CommentView, error) {
	args := m.Called(articleID)
	comments, _ := args.Get(0).([]models.CommentView)
	return comments, args.Error(1)
}

func (m *mockCommentRepository) GetByArticleAndID(articleID, commentID uint) (*models.Comment, error) {
	args := m.Called(articleID, commentID)
	comment, _ := args.Get(0).(*models.Comment)
	return comment, args.Error(1)
}

func (m *mockCommentRepository) Delete(comment *models.Comment) error {
	return m.Called(comment).Error(0)
}

type mockSubscriptionRepository struct {
	mock.Mock
}

func (m *mockSubscriptionRepository) Create(sub *models.Subscription) error {
	return m.Called(sub).Error(0)
}

func (m *mockSubscriptionRepository) Exists(userID, channelID uint) (bool, error) {
	args := m.Called(userID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *mockSubscriptionRepository) Delete(userID, channelID uint) (int64, error) {
	args := m.Called(userID, channelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSubscriptionRepository) CountByChannel(channelID uint) (int64, error) {
	args := m.Called(channelID)
	return args.Get(0).(int64), args.Error(1)
}

type mockFavoriteRepository struct {
	mock.Mock
}

func (m *mockFavoriteRepository) Create(fav *models.Favorite) error {
	return m.Called(fav).Error(0)
}

func (m *mockFavoriteRepository) Exists(userID, articleID uint) (bool, error) {
	args := m.Called(userID, articleID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteRepository) Delete(userID, articleID uint) (int64, error) {
	args := m.Called(userID, articleID)
	return args.Get(0).(int64), args.Error(1)
}

type mockTokenRepository struct {
	mock.Mock
}

func (m *mockTokenRepository) Blacklist(ctx context.Context, jti string, ttl time.Duration) error {
	return m.Called(ctx, jti, ttl).Error(0)
}

func (m *mockTokenRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}
