package deps

import (
	"context"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/entities"
)

// ChannelRepository defines the interface for channel data access
type ChannelRepository interface {
	// Create creates a new channel
	Create(ctx context.Context, channel *entities.Channel) error

	// List retrieves all channels with creator name and published-post count
	List(ctx context.Context) ([]dto.ChannelItem, error)

	// SetVerification overwrites the verification state; flag and type are
	// written atomically
	SetVerification(ctx context.Context, id uint, verificationType *string, verified bool) error
}

// AdminChecker answers authoritative role checks against the users table
type AdminChecker interface {
	// IsAdmin reports whether the user holds the administrator flag
	IsAdmin(ctx context.Context, userID uint) (bool, error)
}
