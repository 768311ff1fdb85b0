package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	settinguc "github.com/seyidturgut/certifix.ai-sub001/internal/application/setting/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

type getSettingsUseCase interface {
	Execute(ctx context.Context) (map[string]string, error)
}

type updateSettingsUseCase interface {
	Execute(ctx context.Context, cmd settinguc.UpdateSettingsCommand) (map[string]string, error)
}

type SettingHandler struct {
	getUC    getSettingsUseCase
	updateUC updateSettingsUseCase
	logger   logger.Interface
}

func NewSettingHandler(getUC getSettingsUseCase, updateUC updateSettingsUseCase, logger logger.Interface) *SettingHandler {
	return &SettingHandler{getUC: getUC, updateUC: updateUC, logger: logger}
}

func (h *SettingHandler) GetSettings(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SettingHandler) UpdateSettings(c *gin.Context) {
	var cmd settinguc.UpdateSettingsCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for update settings", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", result)
}
