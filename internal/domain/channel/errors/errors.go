package errors

import (
	pkgerrors "github.com/pr-poehali-dev/wild-politics-portal/pkg/errors"
)

var (
	// ErrChannelNotFound is returned when the channel does not exist
	ErrChannelNotFound = pkgerrors.NewNotFoundError("channel not found")

	// ErrNameRequired is returned when a channel is created without a name
	ErrNameRequired = pkgerrors.NewValidationError("channel name is required")

	// ErrChannelIDRequired is returned when verification is requested without a channel
	ErrChannelIDRequired = pkgerrors.NewValidationError("channel_id is required")

	// ErrInvalidVerificationType is returned when the type is outside the closed set
	ErrInvalidVerificationType = pkgerrors.NewValidationError("invalid verification_type")

	// ErrVerifyForbidden is returned when a non-administrator tries to verify
	ErrVerifyForbidden = pkgerrors.NewPermissionError("administrator rights required")

	// ErrUnauthorized is returned when an anonymous caller attempts a mutation
	ErrUnauthorized = pkgerrors.NewUnauthorizedError("authentication required")

	// ErrDatabaseOperation is returned when a database operation fails
	ErrDatabaseOperation = pkgerrors.NewDatabaseError("database operation failed")
)
