package entities

import (
	"time"
)

// User represents a portal user created on first Telegram login
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TelegramID int64     `gorm:"not null;uniqueIndex" json:"telegramId"`
	Username   string    `json:"username"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	PhotoURL   string    `json:"photoUrl"`
	IsAdmin    bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// AdminCode is a single-use, time-bounded elevation code delivered via the bot
type AdminCode struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TelegramID int64     `gorm:"not null;index" json:"telegramId"`
	Code       string    `gorm:"not null;size:6" json:"-"`
	ExpiresAt  time.Time `gorm:"not null" json:"expiresAt"`
	Used       bool      `gorm:"not null;default:false" json:"used"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName returns the table name for AdminCode
func (AdminCode) TableName() string {
	return "admin_codes"
}
