package entities

import (
	"time"
)

// Channel represents a content category that owns articles and can hold a
// verification badge. Invariant: VerificationType is set exactly while
// IsVerified is true.
type Channel struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Description      string    `gorm:"type:text" json:"description"`
	Icon             string    `gorm:"not null;default:Newspaper" json:"icon"`
	Color            string    `gorm:"not null;default:bg-blue-700" json:"color"`
	IsVerified       bool      `gorm:"not null;default:false" json:"isVerified"`
	VerificationType *string   `gorm:"size:32" json:"verificationType"`
	CreatedBy        uint      `gorm:"index" json:"createdBy"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName returns the table name for Channel
func (Channel) TableName() string {
	return "channels"
}
