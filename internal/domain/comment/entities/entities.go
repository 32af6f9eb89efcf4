package entities

import (
	"time"
)

// Status is the comment lifecycle state
type Status string

const (
	// StatusPending is the initial state of every new comment
	StatusPending Status = "pending"

	// StatusApproved is terminal; only approved comments are publicly visible
	StatusApproved Status = "approved"

	// StatusRejected is terminal
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known lifecycle state
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CanModerate reports whether a comment in state s may still be moderated
func (s Status) CanModerate() bool {
	return s == StatusPending
}

// Comment represents a reader comment under an article
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArticleID uint      `gorm:"not null;index" json:"articleId"`
	AuthorID  uint      `gorm:"not null;index" json:"authorId"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Status    Status    `gorm:"size:16;not null;default:pending;index" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
