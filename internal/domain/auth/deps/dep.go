package deps

import (
	"context"
	"time"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// UpsertFromTelegram creates the user on first login or refreshes the
	// profile fields, preserving the stored is_admin flag
	UpsertFromTelegram(ctx context.Context, user *entities.User) (*entities.User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint) (*entities.User, error)

	// SetAdmin flips the administrator flag for a user
	SetAdmin(ctx context.Context, id uint) error
}

// AdminCodeRepository defines the interface for elevation code data access
type AdminCodeRepository interface {
	// Create stores a freshly issued code
	Create(ctx context.Context, code *entities.AdminCode) error

	// ConsumeValid atomically marks the latest matching unused unexpired
	// code as used; returns a domain error when no such code exists
	ConsumeValid(ctx context.Context, telegramID int64, code string, now time.Time) error
}

// CodeSender delivers elevation codes over an out-of-band channel
type CodeSender interface {
	// SendAdminCode sends the code to the user's Telegram chat
	SendAdminCode(ctx context.Context, chatID int64, code string, ttl time.Duration) error
}
