package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/deps"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/entities"
	domainerrors "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/errors"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) deps.UserRepository {
	return &userRepository{
		db: db,
	}
}

// UpsertFromTelegram creates or refreshes a user keyed by telegram_id
func (r *userRepository) UpsertFromTelegram(ctx context.Context, user *entities.User) (*entities.User, error) {
	var existing entities.User
	result := r.db.WithContext(ctx).
		Where("telegram_id = ?", user.TelegramID).
		First(&existing)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
				return nil, domainerrors.ErrDatabaseOperation
			}
			return user, nil
		}
		return nil, domainerrors.ErrDatabaseOperation
	}

	updates := map[string]any{
		"username":   user.Username,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"photo_url":  user.PhotoURL,
	}
	if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}

	return &existing, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	result := r.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, domainerrors.ErrDatabaseOperation
	}
	return &user, nil
}

// SetAdmin flips the administrator flag for a user
func (r *userRepository) SetAdmin(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", id).
		Update("is_admin", true)

	if result.Error != nil {
		return domainerrors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

// adminCodeRepository implements deps.AdminCodeRepository
type adminCodeRepository struct {
	db *gorm.DB
}

// NewAdminCodeRepository creates a new admin code repository
func NewAdminCodeRepository(db *gorm.DB) deps.AdminCodeRepository {
	return &adminCodeRepository{
		db: db,
	}
}

// Create stores a freshly issued code
func (r *adminCodeRepository) Create(ctx context.Context, code *entities.AdminCode) error {
	if err := r.db.WithContext(ctx).Create(code).Error; err != nil {
		return domainerrors.ErrDatabaseOperation
	}
	return nil
}

// ConsumeValid marks the latest matching live code as used inside one
// transaction so a code can never be redeemed twice.
func (r *adminCodeRepository) ConsumeValid(ctx context.Context, telegramID int64, code string, now time.Time) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var adminCode entities.AdminCode
		result := tx.
			Where("telegram_id = ? AND code = ? AND used = ? AND expires_at > ?", telegramID, code, false, now).
			Order("created_at DESC").
			First(&adminCode)

		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerrors.ErrCodeInvalidOrExpired
			}
			return domainerrors.ErrDatabaseOperation
		}

		return tx.Model(&adminCode).Update("used", true).Error
	})

	return err
}
