package services

import (
	"errors"

	"channelhub/models"
	"channelhub/repositories"

	"gorm.io/gorm"
)

type ChannelService interface {
	CreateChannel(req models.CreateChannelRequest, actingUser string) (*models.Channel, error)
	GetChannel(channelID uint) (*models.ChannelDetail, error)
	ListChannels() ([]models.ChannelSummary, error)
	DisableChannel(channelID uint, actingUser string) (*models.ModerationOutcome, error)
	Subscribe(channelID uint, actingUser string) (string, error)
	Unsubscribe(channelID uint, actingUser string) (string, error)
}

type channelService struct {
	channelRepo      repositories.ChannelRepository
	articleRepo      repositories.ArticleRepository
	subscriptionRepo repositories.SubscriptionRepository
	userRepo         repositories.UserRepository
}

func NewChannelService(
	channelRepo repositories.ChannelRepository,
	articleRepo repositories.ArticleRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	userRepo repositories.UserRepository,
) ChannelService {
	return &channelService{
		channelRepo:      channelRepo,
		articleRepo:      articleRepo,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

func (s *channelService) CreateChannel(req models.CreateChannelRequest, actingUser string) (*models.Channel, error) {
	admin, err := requireAdmin(s.userRepo, actingUser)
	if err != nil {
		return nil, err
	}

	if len(req.Name) > models.MaxChannelNameLen {
		return nil, models.ErrorFieldTooLong{Field: "name", Max: models.MaxChannelNameLen}
	}
	if len(req.Description) > models.MaxChannelDescriptionLen {
		return nil, models.ErrorFieldTooLong{Field: "description", Max: models.MaxChannelDescriptionLen}
	}

	// Duplicate names are a benign outcome, not a failure
	existing, err := s.channelRepo.GetByName(req.Name)
	if err == nil && existing.ID != 0 {
		return nil, models.ErrorConflict{Message: "channel name existed"}
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := models.ChannelDefaultStatus
	if req.IsPublic != nil && !*req.IsPublic {
		status = models.StatusPrivate
	}

	channel := &models.Channel{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		AdminID:     &admin.ID,
	}

	if err := s.channelRepo.Create(channel); err != nil {
		return nil, err
	}

	return channel, nil
}

func (s *channelService) GetChannel(channelID uint) (*models.ChannelDetail, error) {
	channel, err := s.channelRepo.GetActiveByID(channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "what channel?"}
		}
		return nil, err
	}

	subscribers, err := s.subscriptionRepo.CountByChannel(channel.ID)
	if err != nil {
		return nil, err
	}

	articles, err := s.articleRepo.ListVisible(&channel.ID, models.DefaultFeedLimit)
	if err != nil {
		return nil, err
	}

	return &models.ChannelDetail{
		ChannelSummary: models.ChannelSummary{
			ID:          channel.ID,
			Name:        channel.Name,
			Summary:     channel.Description,
			Subscribers: subscribers,
		},
		Articles: articles,
	}, nil
}

func (s *channelService) ListChannels() ([]models.ChannelSummary, error) {
	channels, err := s.channelRepo.GetAllActive()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ChannelSummary, 0, len(channels))
	for _, channel := range channels {
		subscribers, err := s.subscriptionRepo.CountByChannel(channel.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, models.ChannelSummary{
			ID:          channel.ID,
			Name:        channel.Name,
			Summary:     channel.Description,
			Subscribers: subscribers,
		})
	}

	return summaries, nil
}

// DisableChannel is the channel's only state transition and it is one-way.
func (s *channelService) DisableChannel(channelID uint, actingUser string) (*models.ModerationOutcome, error) {
	if _, err := requireAdmin(s.userRepo, actingUser); err != nil {
		return nil, err
	}

	channel, err := s.channelRepo.GetByID(channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "what channel?"}
		}
		return nil, err
	}

	if !channel.Disable() {
		return &models.ModerationOutcome{Changed: false, Message: "channel already removed", State: models.StateRemoved}, nil
	}

	if err := s.channelRepo.Update(channel); err != nil {
		return nil, err
	}

	return &models.ModerationOutcome{Changed: true, Message: "channel removed", State: models.StateRemoved}, nil
}

func (s *channelService) Subscribe(channelID uint, actingUser string) (string, error) {
	user, err := resolveUser(s.userRepo, actingUser)
	if err != nil {
		return "", err
	}

	// Only non-disabled channels accept subscriptions
	channel, err := s.channelRepo.GetActiveByID(channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.ErrorNotFound{Message: "what channel?"}
		}
		return "", err
	}

	exists, err := s.subscriptionRepo.Exists(user.ID, channel.ID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", models.ErrorConflict{Message: "already subscribed"}
	}

	sub := &models.Subscription{UserID: user.ID, ChannelID: channel.ID}
	if err := s.subscriptionRepo.Create(sub); err != nil {
		return "", err
	}

	return "successfully subscribed", nil
}

// Unsubscribe works on any channel, disabled ones included; the relation
// record outlives the channel's visibility.
func (s *channelService) Unsubscribe(channelID uint, actingUser string) (string, error) {
	user, err := resolveUser(s.userRepo, actingUser)
	if err != nil {
		return "", err
	}

	channel, err := s.channelRepo.GetByID(channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.ErrorNotFound{Message: "what channel?"}
		}
		return "", err
	}

	rows, err := s.subscriptionRepo.Delete(user.ID, channel.ID)
	if err != nil {
		return "", err
	}
	if rows == 0 {
		return "user did not subscribe", nil
	}

	return "successfully unsubscribed", nil
}
