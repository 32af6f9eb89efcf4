package errors

import (
	pkgerrors "github.com/pr-poehali-dev/wild-politics-portal/pkg/errors"
)

var (
	// ErrMissingTelegramID is returned when the login payload has no id
	ErrMissingTelegramID = pkgerrors.NewValidationError("telegram id is required")

	// ErrInvalidTelegramData is returned when the widget hash check fails
	ErrInvalidTelegramData = pkgerrors.NewUnauthorizedError("invalid telegram data")

	// ErrElevationNotAllowed is returned when the identity is not on the admin allow-list
	ErrElevationNotAllowed = pkgerrors.NewPermissionError("not authorized for elevation")

	// ErrCodeInvalidOrExpired is returned when no matching live code exists
	ErrCodeInvalidOrExpired = pkgerrors.NewUnauthorizedError("invalid or expired code")

	// ErrMissingCodeFields is returned when telegram_id or code is absent
	ErrMissingCodeFields = pkgerrors.NewValidationError("telegram_id and code are required")

	// ErrUserNotFound is returned when the referenced user does not exist
	ErrUserNotFound = pkgerrors.NewNotFoundError("user not found")

	// ErrDatabaseOperation is returned when a database operation fails
	ErrDatabaseOperation = pkgerrors.NewDatabaseError("database operation failed")
)
