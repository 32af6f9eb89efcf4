package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authentities "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/entities"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/deps"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/entities"
	domainerrors "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/errors"
)

type channelRepository struct {
	db *gorm.DB
}

// NewChannelRepository creates a new channel repository
func NewChannelRepository(db *gorm.DB) deps.ChannelRepository {
	return &channelRepository{
		db: db,
	}
}

// Create creates a new channel
func (r *channelRepository) Create(ctx context.Context, channel *entities.Channel) error {
	if err := r.db.WithContext(ctx).Create(channel).Error; err != nil {
		return domainerrors.ErrDatabaseOperation
	}
	return nil
}

// List retrieves all channels joined with creator display name and the count
// of published posts. Verified channels come first, oldest first within that.
func (r *channelRepository) List(ctx context.Context) ([]dto.ChannelItem, error) {
	items := []dto.ChannelItem{}
	result := r.db.WithContext(ctx).Raw(`
		SELECT c.id, c.name, c.description, c.icon, c.color,
		       c.is_verified, c.verification_type, c.created_at,
		       COALESCE(NULLIF(u.first_name, ''), NULLIF(u.username, ''), 'ГТРК ОГФ') AS created_by,
		       (SELECT COUNT(*) FROM articles a
		          WHERE a.channel_id = c.id AND a.status = 'published') AS posts,
		       0 AS subscribers
		FROM channels c
		LEFT JOIN users u ON c.created_by = u.id
		ORDER BY c.is_verified DESC, c.created_at ASC
	`).Scan(&items)

	if result.Error != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}

	return items, nil
}

// SetVerification overwrites the verification state unconditionally
func (r *channelRepository) SetVerification(ctx context.Context, id uint, verificationType *string, verified bool) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Channel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_verified":       verified,
			"verification_type": verificationType,
		})

	if result.Error != nil {
		return domainerrors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrChannelNotFound
	}
	return nil
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
