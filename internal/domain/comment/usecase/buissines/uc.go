package buissines

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/deps"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/entities"
	domainerrors "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/comment/errors"
)

const (
	actionApprove = "approve"
	actionReject  = "reject"
)

// UseCase implements comment lifecycle business logic
type UseCase struct {
	commentRepo deps.CommentRepository
	articles    deps.ArticleReader
	admins      deps.AdminChecker
	producer    deps.EventProducer
	logger      zerolog.Logger
}

// NewUseCase creates a new comment use case
func NewUseCase(
	commentRepo deps.CommentRepository,
	articles deps.ArticleReader,
	admins deps.AdminChecker,
	producer deps.EventProducer,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		commentRepo: commentRepo,
		articles:    articles,
		admins:      admins,
		producer:    producer,
		logger:      logger,
	}
}

// List returns comments for an article. Readers only ever see approved
// comments; pending and rejected listings belong to the moderation view and
// require an administrator.
func (u *UseCase) List(ctx context.Context, actorID uint, req *dto.ListCommentsRequest) ([]dto.CommentItem, error) {
	status := entities.StatusApproved
	if req.Status != "" {
		status = entities.Status(req.Status)
	}
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidStatusFilter
	}

	if status != entities.StatusApproved {
		isAdmin, err := u.admins.IsAdmin(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if !isAdmin {
			return nil, domainerrors.ErrModerationForbidden
		}
	}

	items, err := u.commentRepo.List(ctx, req.ArticleID, status)
	if err != nil {
		u.logger.Error().Err(err).
			Uint("article_id", req.ArticleID).
			Str("status", string(status)).
			Msg("Failed to list comments")
		return nil, err
	}

	return items, nil
}

// Add creates a pending comment on an existing article
func (u *UseCase) Add(ctx context.Context, authorID uint, req *dto.AddCommentRequest) (*dto.AddCommentResponse, error) {
	if authorID == 0 {
		return nil, domainerrors.ErrUnauthorized
	}

	text := strings.TrimSpace(req.Text)
	if req.ArticleID == 0 || text == "" {
		return nil, domainerrors.ErrMissingFields
	}

	exists, err := u.articles.Exists(ctx, req.ArticleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domainerrors.ErrArticleNotFound
	}

	comment := &entities.Comment{
		ArticleID: req.ArticleID,
		AuthorID:  authorID,
		Text:      text,
		Status:    entities.StatusPending,
	}

	if err := u.commentRepo.Create(ctx, comment); err != nil {
		u.logger.Error().Err(err).
			Uint("article_id", req.ArticleID).
			Uint("author_id", authorID).
			Msg("Failed to create comment")
		return nil, err
	}

	u.logger.Info().
		Uint("comment_id", comment.ID).
		Uint("article_id", comment.ArticleID).
		Uint("author_id", authorID).
		Msg("Comment submitted for moderation")

	return &dto.AddCommentResponse{ID: comment.ID, Status: string(comment.Status)}, nil
}

// Moderate applies an approve or reject decision to a pending comment.
// Terminal states cannot be moderated again.
func (u *UseCase) Moderate(ctx context.Context, actorID uint, req *dto.ModerateCommentRequest) (*dto.ModerateCommentResponse, error) {
	isAdmin, err := u.admins.IsAdmin(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, domainerrors.ErrModerationForbidden
	}

	if req.CommentID == 0 {
		return nil, domainerrors.ErrMissingFields
	}

	var target entities.Status
	switch req.Action {
	case actionApprove:
		target = entities.StatusApproved
	case actionReject:
		target = entities.StatusRejected
	default:
		return nil, domainerrors.ErrInvalidAction
	}

	if err := u.commentRepo.UpdateStatus(ctx, req.CommentID, target); err != nil {
		u.logger.Warn().Err(err).
			Uint("comment_id", req.CommentID).
			Str("action", req.Action).
			Msg("Comment moderation failed")
		return nil, err
	}

	u.logger.Info().
		Uint("comment_id", req.CommentID).
		Uint("actor_id", actorID).
		Str("action", req.Action).
		Msg("Comment moderated")

	if target == entities.StatusApproved {
		u.notifyApproved(ctx, req.CommentID)
	}

	return &dto.ModerateCommentResponse{OK: true, Status: string(target)}, nil
}

// notifyApproved publishes the approval event. Delivery failures are logged,
// not surfaced: the state transition already happened.
func (u *UseCase) notifyApproved(ctx context.Context, commentID uint) {
	comment, err := u.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		u.logger.Error().Err(err).
			Uint("comment_id", commentID).
			Msg("Failed to load comment for event publishing")
		return
	}

	if err := u.producer.SendCommentApproved(ctx, comment); err != nil {
		u.logger.Error().Err(err).
			Uint("comment_id", commentID).
			Msg("Failed to publish comment approved event")
	}
}
