package repositories

import (
	"channelhub/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetVisibleByID(id uint) (*models.ArticleSummary, error)
	GetActiveByID(id uint) (*models.Article, error)
	ListVisible(channelID *uint, limit int) ([]models.ArticleSummary, error)
	ListPending(channelID *uint) ([]models.PendingArticle, error)
	ListSubscriptionFeed(userID uint, limit int) ([]models.ArticleSummary, error)
	ListFavoritesFeed(userID uint, limit int) ([]models.ArticleSummary, error)
	Update(article *models.Article) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// visibleArticles is the conjunctive visibility predicate: the channel must
// not be disabled, the author must be active, and the article must be neither
// disabled nor pending review. Every general-purpose listing and fetch goes
// through it, admins included; only the moderation queue bypasses the
// Requested part.
func (r *articleRepository) visibleArticles() *gorm.DB {
	return r.db.Model(&models.Article{}).
		Joins("JOIN channels ON channels.id = articles.channel_id").
		Joins("JOIN users ON users.id = articles.author_id").
		Where("channels.status & ? = 0", models.StatusDisabled).
		Where("users.is_active = ?", true).
		Where("articles.status & ? = 0", models.StatusDisabled|models.StatusRequested)
}

func summaryColumns(query *gorm.DB) *gorm.DB {
	return query.Select(
		"articles.id as id",
		"articles.title as title",
		"users.username as author",
		"articles.created_at as publish_time",
		"articles.content as content",
	)
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, id).Error
	return &article, err
}

func (r *articleRepository) GetVisibleByID(id uint) (*models.ArticleSummary, error) {
	var summary models.ArticleSummary
	err := summaryColumns(r.visibleArticles()).
		Where("articles.id = ?", id).
		Take(&summary).Error
	return &summary, err
}

// GetActiveByID resolves an article that is neither disabled nor pending
// review, without the channel/author checks. Used for the favorite action.
func (r *articleRepository) GetActiveByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("id = ? AND status & ? = 0", id,
		models.StatusDisabled|models.StatusRequested).
		First(&article).Error
	return &article, err
}

func (r *articleRepository) ListVisible(channelID *uint, limit int) ([]models.ArticleSummary, error) {
	query := summaryColumns(r.visibleArticles())
	if channelID != nil {
		query = query.Where("articles.channel_id = ?", *channelID)
	}

	var summaries []models.ArticleSummary
	err := query.Order("articles.created_at desc").
		Limit(limit).
		Scan(&summaries).Error
	return summaries, err
}

// ListPending returns the moderation queue: articles with the Requested bit
// set and the Disabled bit clear. The Disabled filter on both the article and
// its channel still applies; rejected articles never come back.
func (r *articleRepository) ListPending(channelID *uint) ([]models.PendingArticle, error) {
	query := r.db.Model(&models.Article{}).
		Joins("JOIN channels ON channels.id = articles.channel_id").
		Joins("JOIN users ON users.id = articles.author_id").
		Where("channels.status & ? = 0", models.StatusDisabled).
		Where("articles.status & ? != 0", models.StatusRequested).
		Where("articles.status & ? = 0", models.StatusDisabled).
		Select(
			"articles.id as id",
			"articles.title as title",
			"users.username as author",
			"channels.name as channel",
			"articles.status as status",
		)
	if channelID != nil {
		query = query.Where("articles.channel_id = ?", *channelID)
	}

	var pending []models.PendingArticle
	err := query.Order("articles.created_at asc").Scan(&pending).Error
	return pending, err
}

func (r *articleRepository) ListSubscriptionFeed(userID uint, limit int) ([]models.ArticleSummary, error) {
	var summaries []models.ArticleSummary
	err := summaryColumns(r.visibleArticles()).
		Joins("JOIN subscriptions ON subscriptions.channel_id = articles.channel_id").
		Where("subscriptions.user_id = ?", userID).
		Order("articles.created_at desc").
		Limit(limit).
		Scan(&summaries).Error
	return summaries, err
}

func (r *articleRepository) ListFavoritesFeed(userID uint, limit int) ([]models.ArticleSummary, error) {
	var summaries []models.ArticleSummary
	err := summaryColumns(r.visibleArticles()).
		Joins("JOIN favorites ON favorites.article_id = articles.id").
		Where("favorites.user_id = ?", userID).
		Order("articles.created_at desc").
		Limit(limit).
		Scan(&summaries).Error
	return summaries, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}
