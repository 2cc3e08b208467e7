package models

// Subscriptions and favorites are explicit join rows so feed queries can
// apply the visibility filters in SQL instead of walking eagerly loaded
// collections.

type Subscription struct {
	ID        uint `json:"id" gorm:"primarykey"`
	UserID    uint `json:"user_id" gorm:"uniqueIndex:idx_subscription_pair;not null"`
	ChannelID uint `json:"channel_id" gorm:"uniqueIndex:idx_subscription_pair;not null"`
}

type Favorite struct {
	ID        uint `json:"id" gorm:"primarykey"`
	UserID    uint `json:"user_id" gorm:"uniqueIndex:idx_favorite_pair;not null"`
	ArticleID uint `json:"article_id" gorm:"uniqueIndex:idx_favorite_pair;not null"`
}
