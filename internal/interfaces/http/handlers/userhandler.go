package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	useruc "github.com/seyidturgut/certifix.ai-sub001/internal/application/user/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

type UserHandler struct {
	getUC           getUserUseCase
	listUC          listUsersUseCase
	updateUC        updateUserUseCase
	deleteUC        deleteUserUseCase
	subscriptionsUC listUserSubscriptionsUseCase
	logger          logger.Interface
}

func NewUserHandler(
	getUC getUserUseCase,
	listUC listUsersUseCase,
	updateUC updateUserUseCase,
	deleteUC deleteUserUseCase,
	subscriptionsUC listUserSubscriptionsUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getUC:           getUC,
		listUC:          listUC,
		updateUC:        updateUC,
		deleteUC:        deleteUC,
		subscriptionsUC: subscriptionsUC,
		logger:          logger,
	}
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := pathParam(c, "id", "User ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id, requesterFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), useruc.ListUsersQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Search:   c.Query("search"),
		Role:     c.Query("role"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, pagination.Page, pagination.PageSize)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := pathParam(c, "id", "User ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var cmd useruc.UpdateUserCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for update user", "user_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.ID = id
	cmd.Requester = requesterFrom(c)

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", result)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := pathParam(c, "id", "User ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, requesterFrom(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *UserHandler) ListUserSubscriptions(c *gin.Context) {
	id, err := pathParam(c, "id", "User ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.subscriptionsUC.Execute(c.Request.Context(), id, requesterFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
