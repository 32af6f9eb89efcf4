package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	articleentities "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/entities"
	authentities "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/entities"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/deps"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/entities"
	domainerrors "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/errors"
)

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) deps.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// Create creates a new comment
func (r *commentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return domainerrors.ErrDatabaseOperation
	}
	return nil
}

// GetByID retrieves a comment by ID
func (r *commentRepository) GetByID(ctx context.Context, id uint) (*entities.Comment, error) {
	var comment entities.Comment
	result := r.db.WithContext(ctx).First(&comment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}
		return nil, domainerrors.ErrDatabaseOperation
	}
	return &comment, nil
}

// List retrieves comments with author display names, oldest first
func (r *commentRepository) List(ctx context.Context, articleID uint, status entities.Status) ([]dto.CommentItem, error) {
	query := `
		SELECT cm.id, cm.article_id, cm.text, cm.status, cm.created_at,
		       COALESCE(NULLIF(u.first_name, ''), NULLIF(u.username, ''), 'Гражданин ОГФ') AS author_name,
		       cm.author_id
		FROM comments cm
		LEFT JOIN users u ON cm.author_id = u.id
		WHERE cm.status = ?`
	args := []any{status}

	if articleID != 0 {
		query += " AND cm.article_id = ?"
		args = append(args, articleID)
	}
	query += " ORDER BY cm.created_at ASC"

	// empty slice so an empty thread serializes as [] rather than null
	items := []dto.CommentItem{}
	result := r.db.WithContext(ctx).Raw(query, args...).Scan(&items)
	if result.Error != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}

	return items, nil
}

// UpdateStatus transitions a pending comment to a terminal state. Same
// conditional-update race rule as articles.
func (r *commentRepository) UpdateStatus(ctx context.Context, id uint, to entities.Status) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("id = ? AND status = ?", id, entities.StatusPending).
		Update("status", to)

	if result.Error != nil {
		return domainerrors.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&entities.Comment{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return domainerrors.ErrDatabaseOperation
		}
		if count == 0 {
			return domainerrors.ErrCommentNotFound
		}
		return domainerrors.ErrNotPending
	}

	return nil
}

// articleReader implements deps.ArticleReader against the articles table
type articleReader struct {
	db *gorm.DB
}

// NewArticleReader creates an article existence checker
func NewArticleReader(db *gorm.DB) deps.ArticleReader {
	return &articleReader{
		db: db,
	}
}

// Exists reports whether the article exists
func (r *articleReader) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&articleentities.Article{}).
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

// IsAdmin reports whether the user holds the administrator flag
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
