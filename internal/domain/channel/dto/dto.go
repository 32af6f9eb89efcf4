package dto

import "time"

// CreateChannelRequest creates a new channel
type CreateChannelRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// CreateChannelResponse confirms channel creation
type CreateChannelResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// VerifyChannelRequest grants or revokes a verification badge
type VerifyChannelRequest struct {
	ChannelID        uint    `json:"channel_id"`
	VerificationType *string `json:"verification_type"`
	IsVerified       *bool   `json:"is_verified"`
}

// VerifyChannelResponse confirms the verification change
type VerifyChannelResponse struct {
	OK bool `json:"ok"`
}

// ChannelItem is a channel row with projections for the listing
type ChannelItem struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Icon              string    `json:"icon"`
	Color             string    `json:"color"`
	IsVerified        bool      `json:"is_verified"`
	VerificationType  *string   `json:"verification_type"`
	VerificationLabel *string   `json:"verification_label"`
	CreatedAt         time.Time `json:"created_at"`
	CreatedBy         string    `json:"created_by"`
	Posts             int64     `json:"posts"`
	Subscribers       int64     `json:"subscribers"`
}
