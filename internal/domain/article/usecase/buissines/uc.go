package buissines

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/deps"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/entities"
	domainerrors "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/article/errors"
)

const (
	actionApprove = "approve"
	actionReject  = "reject"
)

// UseCase implements article lifecycle business logic
type UseCase struct {
	articleRepo deps.ArticleRepository
	channels    deps.ChannelReader
	admins      deps.AdminChecker
	producer    deps.EventProducer
	logger      zerolog.Logger
}

// NewUseCase creates a new article use case
func NewUseCase(
	articleRepo deps.ArticleRepository,
	channels deps.ChannelReader,
	admins deps.AdminChecker,
	producer deps.EventProducer,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		articleRepo: articleRepo,
		channels:    channels,
		admins:      admins,
		producer:    producer,
		logger:      logger,
	}
}

// List returns the article feed. The public feed carries published articles
// only; pending and rejected listings are the moderation queue and require
// an administrator.
func (u *UseCase) List(ctx context.Context, actorID uint, req *dto.ListArticlesRequest) ([]dto.ArticleItem, error) {
	status := entities.StatusPublished
	if req.Status != "" {
		status = entities.Status(req.Status)
	}
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidStatusFilter
	}

	if status != entities.StatusPublished {
		isAdmin, err := u.admins.IsAdmin(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if !isAdmin {
			return nil, domainerrors.ErrModerationForbidden
		}
	}

	items, err := u.articleRepo.List(ctx, status, req.ChannelID)
	if err != nil {
		u.logger.Error().Err(err).
			Str("status", string(status)).
			Uint("channel_id", req.ChannelID).
			Msg("Failed to list articles")
		return nil, err
	}

	return items, nil
}

// GetByID returns a single article and bumps its view counter
func (u *UseCase) GetByID(ctx context.Context, id uint) (*dto.ArticleItem, error) {
	if err := u.articleRepo.IncrementViews(ctx, id); err != nil {
		u.logger.Warn().Err(err).
			Uint("article_id", id).
			Msg("Failed to increment views")
	}

	item, err := u.articleRepo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// Submit proposes a new article. It enters the queue as pending; channel
// aggregate counters only reflect published posts, so nothing else changes.
func (u *UseCase) Submit(ctx context.Context, authorID uint, req *dto.SubmitArticleRequest) (*dto.SubmitArticleResponse, error) {
	if authorID == 0 {
		return nil, domainerrors.ErrUnauthorized
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" || req.ChannelID == 0 {
		return nil, domainerrors.ErrMissingFields
	}

	exists, err := u.channels.Exists(ctx, req.ChannelID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domainerrors.ErrChannelNotFound
	}

	article := &entities.Article{
		Title:     title,
		Content:   content,
		Excerpt:   makeExcerpt(content),
		ChannelID: req.ChannelID,
		AuthorID:  authorID,
		Status:    entities.StatusPending,
	}

	if err := u.articleRepo.Create(ctx, article); err != nil {
		u.logger.Error().Err(err).
			Uint("channel_id", req.ChannelID).
			Uint("author_id", authorID).
			Msg("Failed to create article")
		return nil, err
	}

	u.logger.Info().
		Uint("article_id", article.ID).
		Uint("channel_id", article.ChannelID).
		Uint("author_id", authorID).
		Msg("Article submitted for moderation")

	return &dto.SubmitArticleResponse{ID: article.ID, Status: string(article.Status)}, nil
}

// Moderate applies an approve or reject decision to a pending article.
// published and rejected are terminal: a second decision on the same article
// fails with an invalid-transition error instead of overwriting the first.
func (u *UseCase) Moderate(ctx context.Context, actorID uint, articleID uint, req *dto.ModerateArticleRequest) (*dto.ModerateArticleResponse, error) {
	isAdmin, err := u.admins.IsAdmin(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, domainerrors.ErrModerationForbidden
	}

	var target entities.Status
	switch req.Action {
	case actionApprove:
		target = entities.StatusPublished
	case actionReject:
		target = entities.StatusRejected
	default:
		return nil, domainerrors.ErrInvalidAction
	}

	isBreaking := req.Action == actionApprove && req.IsBreaking

	if err := u.articleRepo.UpdateStatus(ctx, articleID, target, isBreaking); err != nil {
		u.logger.Warn().Err(err).
			Uint("article_id", articleID).
			Str("action", req.Action).
			Msg("Article moderation failed")
		return nil, err
	}

	u.logger.Info().
		Uint("article_id", articleID).
		Uint("actor_id", actorID).
		Str("action", req.Action).
		Bool("is_breaking", isBreaking).
		Msg("Article moderated")

	u.notifyModerated(ctx, articleID, target)

	return &dto.ModerateArticleResponse{OK: true, Status: string(target)}, nil
}

// notifyModerated publishes the moderation outcome. Delivery failures are
// logged, not surfaced: the state transition already happened.
func (u *UseCase) notifyModerated(ctx context.Context, articleID uint, target entities.Status) {
	article, err := u.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		u.logger.Error().Err(err).
			Uint("article_id", articleID).
			Msg("Failed to load article for event publishing")
		return
	}

	if target == entities.StatusPublished {
		err = u.producer.SendArticlePublished(ctx, article)
	} else {
		err = u.producer.SendArticleRejected(ctx, article)
	}
	if err != nil {
		u.logger.Error().Err(err).
			Uint("article_id", articleID).
			Msg("Failed to publish moderation event")
	}
}
