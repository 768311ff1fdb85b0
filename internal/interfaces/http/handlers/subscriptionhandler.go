package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	subuc "github.com/seyidturgut/certifix.ai-sub001/internal/application/subscription/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

// SubscriptionHandler serves the admin subscription endpoints. Users read
// their own subscriptions through UserHandler.
type SubscriptionHandler struct {
	assignUC       assignSubscriptionUseCase
	changeStatusUC changeSubscriptionStatusUseCase
	logger         logger.Interface
}

func NewSubscriptionHandler(
	assignUC assignSubscriptionUseCase,
	changeStatusUC changeSubscriptionStatusUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		assignUC:       assignUC,
		changeStatusUC: changeStatusUC,
		logger:         logger,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE PENDING CANCELLED EXPIRED"`
}

func (h *SubscriptionHandler) AssignSubscription(c *gin.Context) {
	var cmd subuc.AssignSubscriptionCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for assign subscription", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription assigned successfully")
}

func (h *SubscriptionHandler) UpdateStatus(c *gin.Context) {
	id, err := parseUintParam(c, "id", "Subscription ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), subuc.ChangeStatusCommand{
		ID:     id,
		Status: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription status updated", result)
}
