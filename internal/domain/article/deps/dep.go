package deps

import (
	"context"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/entities"
)

// ArticleRepository defines the interface for article data access
type ArticleRepository interface {
	// Create creates a new article
	Create(ctx context.Context, article *entities.Article) error

	// GetByID retrieves a bare article by ID
	GetByID(ctx context.Context, id uint) (*entities.Article, error)

	// GetItem retrieves a single article with channel and author projections
	GetItem(ctx context.Context, id uint) (*dto.ArticleItem, error)

	// List retrieves articles filtered by status and optionally channel,
	// breaking news first, newest first
	List(ctx context.Context, status entities.Status, channelID uint) ([]dto.ArticleItem, error)

	// IncrementViews bumps the view counter
	IncrementViews(ctx context.Context, id uint) error

	// UpdateStatus transitions a pending article to a terminal state.
	// The update is conditional on the pending state so concurrent
	// moderators cannot both win; the loser gets an invalid-transition error.
	UpdateStatus(ctx context.Context, id uint, to entities.Status, isBreaking bool) error
}

// ChannelReader checks channel existence for submissions
type ChannelReader interface {
	// Exists reports whether the channel exists
	Exists(ctx context.Context, id uint) (bool, error)
}

// AdminChecker answers authoritative role checks against the users table
type AdminChecker interface {
	// IsAdmin reports whether the user holds the administrator flag
	IsAdmin(ctx context.Context, userID uint) (bool, error)
}

// EventProducer publishes moderation outcomes for downstream consumers
type EventProducer interface {
	// SendArticlePublished sends an article published event
	SendArticlePublished(ctx context.Context, article *entities.Article) error

	// SendArticleRejected sends an article rejected event
	SendArticleRejected(ctx context.Context, article *entities.Article) error
}
