package dto

import "time"

// SubmitArticleRequest proposes a new article for moderation
type SubmitArticleRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	ChannelID uint   `json:"channel_id"`
}

// SubmitArticleResponse confirms the pending submission
type SubmitArticleResponse struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// ModerateArticleRequest applies an admin moderation decision
type ModerateArticleRequest struct {
	Action     string `json:"action"`
	IsBreaking bool   `json:"is_breaking"`
}

// ModerateArticleResponse reports the resulting state
type ModerateArticleResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

// ListArticlesRequest filters the article feed
type ListArticlesRequest struct {
	Status    string `form:"status"`
	ChannelID uint   `form:"channel_id"`
}

// ArticleItem is an article row joined with channel and author projections.
// CommentCount counts approved comments only.
type ArticleItem struct {
	ID                      uint      `json:"id"`
	Title                   string    `json:"title"`
	Content                 string    `json:"content"`
	Excerpt                 string    `json:"excerpt"`
	ChannelID               uint      `json:"channel_id"`
	ChannelName             string    `json:"channel_name"`
	ChannelColor            string    `json:"channel_color"`
	ChannelIcon             string    `json:"channel_icon"`
	ChannelVerified         bool      `json:"channel_verified"`
	ChannelVerificationType *string   `json:"channel_verification_type"`
	AuthorID                uint      `json:"author_id"`
	AuthorName              string    `json:"author_name"`
	Status                  string    `json:"status"`
	Views                   int64     `json:"views"`
	IsBreaking              bool      `json:"is_breaking"`
	CreatedAt               time.Time `json:"created_at"`
	CommentCount            int64     `json:"comment_count"`
}
