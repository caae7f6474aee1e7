package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Classification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		check    func(error) bool
	}{
		{"validation", NewValidationError("text is required", "text"), http.StatusBadRequest, IsValidationError},
		{"not found", NewNotFoundError("conversation not found"), http.StatusNotFound, IsNotFoundError},
		{"terminal state", NewTerminalStateError("ticket is closed"), http.StatusConflict, IsTerminalStateError},
		{"forbidden", NewForbiddenError("not a participant"), http.StatusForbidden, IsForbiddenError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("use case failed: %w", tt.err)
			assert.True(t, tt.check(wrapped))
			assert.Equal(t, tt.wantCode, GetAppError(wrapped).Code)
		})
	}
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "validation_error: text is required (text)", NewValidationError("text is required", "text").Error())
	assert.Equal(t, "not_found: ticket not found", NewNotFoundError("ticket not found").Error())
}

func TestAppError_WithCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalError("failed to append message").WithCause(cause)

	assert.ErrorIs(t, err, cause)
	assert.Nil(t, GetAppError(cause))
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"mysql", errors.New("Error 1062 (23000): Duplicate entry '7-3' for key 'idx_conversation_pair'"), true},
		{"sqlite", errors.New("UNIQUE constraint failed: conversations.user_id, conversations.company_id"), true},
		{"postgres", errors.New(`ERROR: duplicate key value violates unique constraint "idx_conversation_pair"`), true},
		{"other", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateError(tt.err))
		})
	}
}

func TestAuthError_IsAppError(t *testing.T) {
	err := fmt.Errorf("verify: %w", NewTokenInvalidError("invalid token subject"))

	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeTokenInvalid, appErr.Type)
	assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	assert.Equal(t, "invalid token subject", appErr.Details)

	assert.True(t, NewTokenInvalidError().SecurityEvent)
	assert.False(t, NewTokenExpiredError().SecurityEvent)
	assert.False(t, NewTokenMissingError().SecurityEvent)
}
