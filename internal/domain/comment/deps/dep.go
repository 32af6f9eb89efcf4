package deps

import (
	"context"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/entities"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(ctx context.Context, comment *entities.Comment) error

	// GetByID retrieves a comment by ID
	GetByID(ctx context.Context, id uint) (*entities.Comment, error)

	// List retrieves comments by status, optionally scoped to an article,
	// oldest first
	List(ctx context.Context, articleID uint, status entities.Status) ([]dto.CommentItem, error)

	// UpdateStatus transitions a pending comment to a terminal state.
	// Conditional on the pending state, same race rule as articles.
	UpdateStatus(ctx context.Context, id uint, to entities.Status) error
}

// ArticleReader checks article existence for new comments
type ArticleReader interface {
	// Exists reports whether the article exists
	Exists(ctx context.Context, id uint) (bool, error)
}

// AdminChecker answers authoritative role checks against the users table
type AdminChecker interface {
	// IsAdmin reports whether the user holds the administrator flag
	IsAdmin(ctx context.Context, userID uint) (bool, error)
}

// EventProducer publishes moderation outcomes for downstream consumers
type EventProducer interface {
	// SendCommentApproved sends a comment approved event
	SendCommentApproved(ctx context.Context, comment *entities.Comment) error
}
