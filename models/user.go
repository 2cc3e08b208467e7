package models

import (
	"time"
)

// Role bits. Roles are combinable; an admin who also reads keeps the Reader
// bit set.
const (
	RoleAdmin  = 1
	RoleEditor = 2
	RoleReader = 4
)

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      int       `json:"role" gorm:"default:4;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) HasRole(role int) bool {
	return HasFlag(u.Role, role)
}

func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}
