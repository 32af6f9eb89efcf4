package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHttp(t *testing.T) {
	mapper := NewMapper()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "nil error",
			err:        nil,
			wantStatus: http.StatusOK,
			wantBody:   "",
		},
		{
			name:       "validation error",
			err:        NewValidationError("title is required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "title is required",
		},
		{
			name:       "not found error",
			err:        NewNotFoundError("article not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   "article not found",
		},
		{
			name:       "invalid transition error",
			err:        NewInvalidTransitionError("article is not pending moderation"),
			wantStatus: http.StatusConflict,
			wantBody:   "article is not pending moderation",
		},
		{
			name:       "conflict error",
			err:        NewConflictError("already exists"),
			wantStatus: http.StatusConflict,
			wantBody:   "already exists",
		},
		{
			name:       "unauthorized error",
			err:        NewUnauthorizedError("authentication required"),
			wantStatus: http.StatusUnauthorized,
			wantBody:   "authentication required",
		},
		{
			name:       "permission error",
			err:        NewPermissionError("administrator rights required"),
			wantStatus: http.StatusForbidden,
			wantBody:   "administrator rights required",
		},
		{
			name:       "database error hides details",
			err:        NewDatabaseError("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
		{
			name:       "unknown error hides details",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
		{
			name:       "wrapped domain error",
			err:        fmt.Errorf("moderate: %w", NewInvalidTransitionError("comment is not pending moderation")),
			wantStatus: http.StatusConflict,
			wantBody:   "moderate: comment is not pending moderation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := mapper.MapErrorToHttp(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestTypeChecks(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("x")))
	assert.True(t, IsInvalidTransitionError(NewInvalidTransitionError("x")))
	assert.False(t, IsInvalidTransitionError(NewConflictError("x")))
	assert.True(t, IsInvalidTransitionError(fmt.Errorf("wrap: %w", NewInvalidTransitionError("x"))))
	assert.False(t, IsNotFoundError(nil))
}
