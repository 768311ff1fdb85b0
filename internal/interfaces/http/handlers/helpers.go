package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/constants"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
)

// requesterFrom reads the caller established by the auth middleware.
func requesterFrom(c *gin.Context) common.Requester {
	return common.Requester{
		UserID: c.GetString(constants.ContextKeyUserID),
		Role:   c.GetString(constants.ContextKeyUserRole),
	}
}

// bindJSON wraps binding failures as validation errors.
func bindJSON(c *gin.Context, target interface{}) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return errors.NewValidationError("Invalid request body", err.Error())
	}
	return nil
}

func pathParam(c *gin.Context, name, label string) (string, error) {
	v := strings.TrimSpace(c.Param(name))
	if v == "" {
		return "", errors.NewValidationError(label + " is required")
	}
	return v, nil
}

func parseUintParam(c *gin.Context, name, label string) (uint, error) {
	v, err := pathParam(c, name, label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(v, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid " + strings.ToLower(label) + " format")
	}
	return uint(id), nil
}
