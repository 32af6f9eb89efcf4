package errors

import (
	pkgerrors "github.com/pr-poehali-dev/wild-politics-portal/pkg/errors"
)

var (
	// ErrArticleNotFound is returned when the article does not exist
	ErrArticleNotFound = pkgerrors.NewNotFoundError("article not found")

	// ErrChannelNotFound is returned when the target channel does not exist
	ErrChannelNotFound = pkgerrors.NewNotFoundError("channel not found")

	// ErrMissingFields is returned when a submission lacks required fields
	ErrMissingFields = pkgerrors.NewValidationError("title, content and channel_id are required")

	// ErrInvalidAction is returned when the moderation action is unknown
	ErrInvalidAction = pkgerrors.NewValidationError("action must be approve or reject")

	// ErrInvalidStatusFilter is returned when an unknown status is requested
	ErrInvalidStatusFilter = pkgerrors.NewValidationError("unknown status filter")

	// ErrNotPending is returned when moderating an article already in a terminal state
	ErrNotPending = pkgerrors.NewInvalidTransitionError("article is not pending moderation")

	// ErrModerationForbidden is returned when a non-administrator tries to moderate
	ErrModerationForbidden = pkgerrors.NewPermissionError("administrator rights required")

	// ErrUnauthorized is returned when an anonymous caller attempts a mutation
	ErrUnauthorized = pkgerrors.NewUnauthorizedError("authentication required")

	// ErrDatabaseOperation is returned when a database operation fails
	ErrDatabaseOperation = pkgerrors.NewDatabaseError("database operation failed")
)
