// Package common holds types shared by use cases of several domains.
package common

import (
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/constants"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
)

// Requester is the authenticated caller as established by the auth
// middleware.
type Requester struct {
	UserID string
	Role   string
}

func (r Requester) IsAdmin() bool {
	return r.Role == constants.RoleAdmin
}

// CanAccess reports whether the caller may act on resources of ownerID.
// Admins may act on anyone's resources.
func (r Requester) CanAccess(ownerID string) bool {
	return r.IsAdmin() || (r.UserID != "" && r.UserID == ownerID)
}

// RequireAccess is CanAccess as an AppError.
func (r Requester) RequireAccess(ownerID string) error {
	if r.CanAccess(ownerID) {
		return nil
	}
	return errors.NewForbiddenError(constants.ErrMsgForbidden)
}
