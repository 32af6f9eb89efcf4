package dto

import "time"

// AddCommentRequest adds a comment to an article
type AddCommentRequest struct {
	ArticleID uint   `json:"article_id"`
	Text      string `json:"text"`
}

// AddCommentResponse confirms the pending comment
type AddCommentResponse struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

// ModerateCommentRequest applies an admin moderation decision
type ModerateCommentRequest struct {
	CommentID uint   `json:"comment_id"`
	Action    string `json:"action"`
}

// ModerateCommentResponse reports the resulting state
type ModerateCommentResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

// ListCommentsRequest filters comments by article and status
type ListCommentsRequest struct {
	ArticleID uint   `form:"article_id"`
	Status    string `form:"status"`
}

// CommentItem is a comment row with the author display name joined
type CommentItem struct {
	ID         uint      `json:"id"`
	ArticleID  uint      `json:"article_id"`
	Text       string    `json:"text"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
	AuthorID   uint      `json:"author_id"`
}
