package models

import (
	"time"
)

type Article struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Title     string    `json:"title" gorm:"size:64;index;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Status    int       `json:"status" gorm:"default:1;not null"`
	AuthorID  uint      `json:"author_id"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID"`
	ChannelID uint      `json:"channel_id"`
	Channel   Channel   `json:"-" gorm:"foreignKey:ChannelID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Article) IsDisabled() bool {
	return HasFlag(a.Status, StatusDisabled)
}

func (a *Article) IsRequested() bool {
	return HasFlag(a.Status, StatusRequested)
}

func (a *Article) State() ArticleState {
	return DeriveState(a.Status)
}
