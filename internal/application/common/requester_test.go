package common

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
)

func TestRequester_CanAccess(t *testing.T) {
	user := Requester{UserID: "u1", Role: "user"}
	admin := Requester{UserID: "a1", Role: "admin"}

	assert.True(t, user.CanAccess("u1"))
	assert.False(t, user.CanAccess("u2"))
	assert.False(t, Requester{}.CanAccess(""))
	assert.True(t, admin.CanAccess("u2"))
}

func TestRequester_RequireAccess(t *testing.T) {
	err := Requester{UserID: "u1", Role: "user"}.RequireAccess("u2")

	appErr := errors.GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	}
	assert.NoError(t, Requester{UserID: "u1"}.RequireAccess("u1"))
}
