package models

import (
	"time"
)

type Channel struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:32;not null"`
	Description string    `json:"description" gorm:"size:255"`
	Status      int       `json:"status" gorm:"default:1;not null"`
	AdminID     *uint     `json:"admin_id"`
	Admin       *User     `json:"-" gorm:"foreignKey:AdminID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Channel) IsDisabled() bool {
	return HasFlag(c.Status, StatusDisabled)
}

// Disable marks the channel removed. There is no re-enable path.
func (c *Channel) Disable() bool {
	status, ok := DisableStatus(c.Status)
	c.Status = status
	return ok
}
