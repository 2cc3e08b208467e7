package services

import (
	"errors"

	"channelhub/models"
	"channelhub/repositories"

	"gorm.io/gorm"
)

type ArticleService interface {
	SubmitArticle(channelID uint, req models.SubmitArticleRequest, actingUser string) (*models.Article, error)
	AcceptArticle(articleID uint, actingUser string) (*models.ModerationOutcome, error)
	RejectArticle(articleID uint, actingUser string) (*models.ModerationOutcome, error)
	DisableArticle(articleID uint, actingUser string) (*models.ModerationOutcome, error)
	GetArticle(articleID uint) (*models.ArticleSummary, error)
	ListVisibleArticles(channelID *uint, limit int) ([]models.ArticleSummary, error)
	ListPendingRequests(channelID *uint, actingUser string) ([]models.PendingArticle, error)
	Like(articleID uint, actingUser string) (string, error)
	Unlike(articleID uint, actingUser string) (string, error)
	SubscriptionFeed(actingUser string, limit int) ([]models.ArticleSummary, error)
	FavoritesFeed(actingUser string, limit int) ([]models.ArticleSummary, error)
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	channelRepo  repositories.ChannelRepository
	favoriteRepo repositories.FavoriteRepository
	userRepo     repositories.UserRepository
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	channelRepo repositories.ChannelRepository,
	favoriteRepo repositories.FavoriteRepository,
	userRepo repositories.UserRepository,
) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		channelRepo:  channelRepo,
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
	}
}

// SubmitArticle files an article with a channel. Admin submissions go live
// immediately; everyone else enters the review queue.
func (s *articleService) SubmitArticle(channelID uint, req models.SubmitArticleRequest, actingUser string) (*models.Article, error) {
	user, err := resolveUser(s.userRepo, actingUser)
	if err != nil {
		return nil, err
	}

	if len(req.Title) > models.MaxArticleTitleLen {
		return nil, models.ErrorFieldTooLong{Field: "title", Max: models.MaxArticleTitleLen}
	}
	if len(req.Content) > models.MaxArticleContentLen {
		return nil, models.ErrorFieldTooLong{Field: "content", Max: models.MaxArticleContentLen}
	}

	channel, err := s.channelRepo.GetActiveByID(channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "what channel?"}
		}
		return nil, err
	}

	status := models.ArticlePendingStatus
	if user.IsAdmin() {
		status = models.ArticleAdminStatus
	}

	article := &models.Article{
		Title:     req.Title,
		Content:   req.Content,
		Status:    status,
		AuthorID:  user.ID,
		ChannelID: channel.ID,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) AcceptArticle(articleID uint, actingUser string) (*models.ModerationOutcome, error) {
	article, err := s.loadForModeration(articleID, actingUser)
	if err != nil {
		return nil, err
	}

	newStatus, ok := models.AcceptArticleStatus(article.Status)
	if !ok {
		switch article.State() {
		case models.StatePublished:
			return &models.ModerationOutcome{Changed: false, Message: "article already accepted", State: models.StatePublished}, nil
		default:
			// Rejected and removed articles stay removed
			return &models.ModerationOutcome{Changed: false, Message: "article already removed", State: article.State()}, nil
		}
	}

	article.Status = newStatus
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return &models.ModerationOutcome{Changed: true, Message: "article accepted", State: models.StatePublished}, nil
}

func (s *articleService) RejectArticle(articleID uint, actingUser string) (*models.ModerationOutcome, error) {
	article, err := s.loadForModeration(articleID, actingUser)
	if err != nil {
		return nil, err
	}

	newStatus, ok := models.RejectArticleStatus(article.Status)
	if !ok {
		switch article.State() {
		case models.StateRejected:
			return &models.ModerationOutcome{Changed: false, Message: "article already rejected", State: models.StateRejected}, nil
		case models.StateRemoved:
			return &models.ModerationOutcome{Changed: false, Message: "article already removed", State: models.StateRemoved}, nil
		default:
			return &models.ModerationOutcome{Changed: false, Message: "article is not pending review", State: article.State()}, nil
		}
	}

	article.Status = newStatus
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return &models.ModerationOutcome{Changed: true, Message: "article rejected", State: models.StateRejected}, nil
}

func (s *articleService) DisableArticle(articleID uint, actingUser string) (*models.ModerationOutcome, error) {
	article, err := s.loadForModeration(articleID, actingUser)
	if err != nil {
		return nil, err
	}

	newStatus, ok := models.DisableStatus(article.Status)
	if !ok {
		return &models.ModerationOutcome{Changed: false, Message: "article already removed", State: article.State()}, nil
	}

	article.Status = newStatus
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return &models.ModerationOutcome{Changed: true, Message: "article removed", State: article.State()}, nil
}

func (s *articleService) GetArticle(articleID uint) (*models.ArticleSummary, error) {
	summary, err := s.articleRepo.GetVisibleByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "what article?"}
		}
		return nil, err
	}
	return summary, nil
}

func (s *articleService) ListVisibleArticles(channelID *uint, limit int) ([]models.ArticleSummary, error) {
	if limit < 1 {
		return []models.ArticleSummary{}, nil
	}
	return s.articleRepo.ListVisible(channelID, limit)
}

// ListPendingRequests is the moderation queue: the one listing allowed to see
// Requested articles. The Disabled filter still applies.
func (s *articleService) ListPendingRequests(channelID *uint, actingUser string) ([]models.PendingArticle, error) {
	if _, err := requireAdmin(s.userRepo, actingUser); err != nil {
		return nil, err
	}
	return s.articleRepo.ListPending(channelID)
}

// Like only applies to articles that are neither disabled nor pending review.
func (s *articleService) Like(articleID uint, actingUser string) (string, error) {
	user, err := resolveUser(s.userRepo, actingUser)
	if err != nil {
		return "", err
	}

	article, err := s.articleRepo.GetActiveByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.ErrorNotFound{Message: "what article?"}
		}
		return "", err
	}

	exists, err := s.favoriteRepo.Exists(user.ID, article.ID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", models.ErrorConflict{Message: "already liked"}
	}

	fav := &models.Favorite{UserID: user.ID, ArticleID: article.ID}
	if err := s.favoriteRepo.Create(fav); err != nil {
		return "", err
	}

	return "liked article", nil
}

// Unlike works on any article, disabled and requested ones included.
func (s *articleService) Unlike(articleID uint, actingUser string) (string, error) {
	user, err := resolveUser(s.userRepo, actingUser)
	if err != nil {
		return "", err
	}

	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.ErrorNotFound{Message: "what article?"}
		}
		return "", err
	}

	rows, err := s.favoriteRepo.Delete(user.ID, article.ID)
	if err != nil {
		return "", err
	}
	if rows == 0 {
		return "article is not liked by user", nil
	}

	return "removed like from article", nil
}

func (s *articleService) SubscriptionFeed(actingUser string, limit int) ([]models.ArticleSummary, error) {
	user, err := resolveUser(s.userRepo, actingUser)
	if err != nil {
		return nil, err
	}
	if limit < 1 {
		return []models.ArticleSummary{}, nil
	}
	return s.articleRepo.ListSubscriptionFeed(user.ID, limit)
}

func (s *articleService) FavoritesFeed(actingUser string, limit int) ([]models.ArticleSummary, error) {
	user, err := resolveUser(s.userRepo, actingUser)
	if err != nil {
		return nil, err
	}
	if limit < 1 {
		return []models.ArticleSummary{}, nil
	}
	return s.articleRepo.ListFavoritesFeed(user.ID, limit)
}

// loadForModeration performs the admin gate followed by the article lookup;
// the authorization check always runs first so an unauthorized caller learns
// nothing about which articles exist.
func (s *articleService) loadForModeration(articleID uint, actingUser string) (*models.Article, error) {
	if _, err := requireAdmin(s.userRepo, actingUser); err != nil {
		return nil, err
	}

	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "what article?"}
		}
		return nil, err
	}

	return article, nil
}
