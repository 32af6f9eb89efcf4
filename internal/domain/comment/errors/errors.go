package errors

import (
	pkgerrors "github.com/pr-poehali-dev/wild-politics-portal/pkg/errors"
)

var (
	// ErrCommentNotFound is returned when the comment does not exist
	ErrCommentNotFound = pkgerrors.NewNotFoundError("comment not found")

	// ErrArticleNotFound is returned when the target article does not exist
	ErrArticleNotFound = pkgerrors.NewNotFoundError("article not found")

	// ErrMissingFields is returned when article_id or text is absent
	ErrMissingFields = pkgerrors.NewValidationError("article_id and text are required")

	// ErrInvalidAction is returned when the moderation action is unknown
	ErrInvalidAction = pkgerrors.NewValidationError("action must be approve or reject")

	// ErrInvalidStatusFilter is returned when an unknown status is requested
	ErrInvalidStatusFilter = pkgerrors.NewValidationError("unknown status filter")

	// ErrNotPending is returned when moderating a comment already in a terminal state
	ErrNotPending = pkgerrors.NewInvalidTransitionError("comment is not pending moderation")

	// ErrModerationForbidden is returned when a non-administrator tries to moderate
	ErrModerationForbidden = pkgerrors.NewPermissionError("administrator rights required")

	// ErrUnauthorized is returned when an anonymous caller attempts a mutation
	ErrUnauthorized = pkgerrors.NewUnauthorizedError("authentication required")

	// ErrDatabaseOperation is returned when a database operation fails
	ErrDatabaseOperation = pkgerrors.NewDatabaseError("database operation failed")
)
