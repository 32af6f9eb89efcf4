package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/deps"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/entities"
	domainerrors "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/errors"
)

// itemQuery joins articles with their channel, author display name and the
// approved comment count. Pending and rejected comments never count.
const itemQuery = `
	SELECT a.id, a.title, a.content, a.excerpt,
	       a.channel_id, c.name AS channel_name, c.color AS channel_color, c.icon AS channel_icon,
	       c.is_verified AS channel_verified, c.verification_type AS channel_verification_type,
	       a.author_id,
	       COALESCE(NULLIF(u.first_name, ''), NULLIF(u.username, ''), 'Гражданин ОГФ') AS author_name,
	       a.status, a.views, a.is_breaking, a.created_at,
	       (SELECT COUNT(*) FROM comments cm
	          WHERE cm.article_id = a.id AND cm.status = 'approved') AS comment_count
	FROM articles a
	LEFT JOIN channels c ON a.channel_id = c.id
	LEFT JOIN users u ON a.author_id = u.id
`

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *gorm.DB) deps.ArticleRepository {
	return &articleRepository{
		db: db,
	}
}

// Create creates a new article
func (r *articleRepository) Create(ctx context.Context, article *entities.Article) error {
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return domainerrors.ErrDatabaseOperation
	}
	return nil
}

// GetByID retrieves a bare article by ID
func (r *articleRepository) GetByID(ctx context.Context, id uint) (*entities.Article, error) {
	var article entities.Article
	result := r.db.WithContext(ctx).First(&article, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrArticleNotFound
		}
		return nil, domainerrors.ErrDatabaseOperation
	}
	return &article, nil
}

// GetItem retrieves a single article with its projections
func (r *articleRepository) GetItem(ctx context.Context, id uint) (*dto.ArticleItem, error) {
	var items []dto.ArticleItem
	result := r.db.WithContext(ctx).
		Raw(itemQuery+" WHERE a.id = ?", id).
		Scan(&items)

	if result.Error != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrArticleNotFound
	}

	return &items[0], nil
}

// List retrieves articles by status and optionally by channel
func (r *articleRepository) List(ctx context.Context, status entities.Status, channelID uint) ([]dto.ArticleItem, error) {
	query := itemQuery + " WHERE a.status = ?"
	args := []any{status}

	if channelID != 0 {
		query += " AND a.channel_id = ?"
		args = append(args, channelID)
	}
	query += " ORDER BY a.is_breaking DESC, a.created_at DESC"

	// empty slice so an empty feed serializes as [] rather than null
	items := []dto.ArticleItem{}
	result := r.db.WithContext(ctx).Raw(query, args...).Scan(&items)
	if result.Error != nil {
		return nil, domainerrors.ErrDatabaseOperation
	}

	return items, nil
}

// IncrementViews bumps the view counter
func (r *articleRepository) IncrementViews(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))

	if result.Error != nil {
		return domainerrors.ErrDatabaseOperation
	}
	return nil
}

// UpdateStatus transitions a pending article to a terminal state. The WHERE
// clause pins the source state, so when two moderators race only one update
// applies and the second caller sees an invalid-transition error.
func (r *articleRepository) UpdateStatus(ctx context.Context, id uint, to entities.Status, isBreaking bool) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Article{}).
		Where("id = ? AND status = ?", id, entities.StatusPending).
		Updates(map[string]any{
			"status":      to,
			"is_breaking": isBreaking,
		})

	if result.Error != nil {
		return domainerrors.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&entities.Article{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return domainerrors.ErrDatabaseOperation
		}
		if count == 0 {
			return domainerrors.ErrArticleNotFound
		}
		return domainerrors.ErrNotPending
	}

	return nil
}
