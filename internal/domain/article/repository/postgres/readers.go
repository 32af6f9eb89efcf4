package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/deps"
	domainerrors "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/errors"
	authentities "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/entities"
	channelentities "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/entities"
)

// channelReader implements deps.ChannelReader against the channels table
type channelReader struct {
	db *gorm.DB
}

// NewChannelReader creates a channel existence checker
func NewChannelReader(db *gorm.DB) deps.ChannelReader {
	return &channelReader{
		db: db,
	}
}

// Exists reports whether the channel exists
func (r *channelReader) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&channelentities.Channel{}).
		Where("id = ?", id).
		Count(&count)

	if result.Error != nil {
		return false, domainerrors.ErrDatabaseOperation
	}

	return count > 0, nil
}

// adminReader implements deps.AdminChecker against the users table
type adminReader struct {
	db *gorm.DB
}

// NewAdminReader creates an authoritative role checker
func NewAdminReader(db *gorm.DB) deps.AdminChecker {
	return &adminReader{
		db: db,
	}
}

// IsAdmin reports whether the user holds the administrator flag.
// Unknown or anonymous users are never administrators.
func (r *adminReader) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	var user authentities.User
	result := r.db.WithContext(ctx).Select("is_admin").First(&user, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, domainerrors.ErrDatabaseOperation
	}

	return user.IsAdmin, nil
}
