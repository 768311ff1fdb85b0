package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLimitExceededError(t *testing.T) {
	err := NewLimitExceededError("designs", "design limit reached")

	assert.Equal(t, ErrorTypeLimitExceeded, err.Type)
	assert.Equal(t, http.StatusForbidden, err.Code)
	assert.Equal(t, "designs", err.LimitReached)
	assert.Equal(t, "limit_exceeded: design limit reached", err.Error())
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("create design: %w", NewLimitExceededError("designs", "full"))

	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, "designs", appErr.LimitReached)
	assert.True(t, IsLimitExceededError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
}

func TestGetAppError_Plain(t *testing.T) {
	assert.Nil(t, GetAppError(fmt.Errorf("boom")))
	assert.False(t, IsAppError(nil))
}

func TestConstructors_StatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("x").Code)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("x").Code)
	assert.Equal(t, http.StatusConflict, NewConflictError("x").Code)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("x").Code)
	assert.Equal(t, http.StatusForbidden, NewForbiddenError("x").Code)
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("x").Code)
	assert.Equal(t, "detail", NewBadRequestError("x", "detail").Details)
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry 'a' for key 'email'")))
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: users.email")))
	assert.True(t, IsDuplicateError(fmt.Errorf(`pq: duplicate key value violates unique constraint "users_email_key"`)))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
