package models

import (
	"time"
)

// Comment carries no status field: a comment is either visible or hard
// deleted by moderation.
type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Body      string    `json:"body" gorm:"size:255;not null"`
	AuthorID  uint      `json:"author_id"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID"`
	ArticleID uint      `json:"article_id"`
	CreatedAt time.Time `json:"created_at"`
}
