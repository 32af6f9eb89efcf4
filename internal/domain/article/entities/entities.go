package entities

import (
	"time"
)

// Status is the article lifecycle state
type Status string

const (
	// StatusPending is the initial state of every submission
	StatusPending Status = "pending"

	// StatusPublished is terminal, reached only from pending via approve
	StatusPublished Status = "published"

	// StatusRejected is terminal, reached only from pending via reject.
	// There is no transition out of rejected: retrying means a new submission.
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known lifecycle state
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPublished, StatusRejected:
		return true
	}
	return false
}

// CanModerate reports whether an article in state s may still be moderated
func (s Status) CanModerate() bool {
	return s == StatusPending
}

// Article represents a submitted publication owned by a channel
type Article struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Excerpt    string    `gorm:"type:text" json:"excerpt"`
	ChannelID  uint      `gorm:"not null;index" json:"channelId"`
	AuthorID   uint      `gorm:"not null;index" json:"authorId"`
	Status     Status    `gorm:"size:16;not null;default:pending;index" json:"status"`
	Views      int64     `gorm:"not null;default:0" json:"views"`
	IsBreaking bool      `gorm:"not null;default:false" json:"isBreaking"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName returns the table name for Article
func (Article) TableName() string {
	return "articles"
}
