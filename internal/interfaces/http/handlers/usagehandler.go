package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	usagedto "github.com/seyidturgut/certifix.ai-sub001/internal/application/usage/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

type getUsageUseCase interface {
	Execute(ctx context.Context, userID string) (*usagedto.UsageDTO, error)
}

type UsageHandler struct {
	getUsageUC getUsageUseCase
	logger     logger.Interface
}

func NewUsageHandler(getUsageUC getUsageUseCase, logger logger.Interface) *UsageHandler {
	return &UsageHandler{getUsageUC: getUsageUC, logger: logger}
}

// GetUsage reports the resolved plan and current usage of a user.
func (h *UsageHandler) GetUsage(c *gin.Context) {
	userID, err := pathParam(c, "userId", "User ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := requesterFrom(c).RequireAccess(userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUsageUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
