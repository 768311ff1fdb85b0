package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	assetuc "github.com/seyidturgut/certifix.ai-sub001/internal/application/asset/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

type AssetHandler struct {
	createUC createAssetUseCase
	listUC   listAssetsUseCase
	getUC    getAssetUseCase
	deleteUC deleteAssetUseCase
	logger   logger.Interface
}

func NewAssetHandler(
	createUC createAssetUseCase,
	listUC listAssetsUseCase,
	getUC getAssetUseCase,
	deleteUC deleteAssetUseCase,
	logger logger.Interface,
) *AssetHandler {
	return &AssetHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var cmd assetuc.CreateAssetCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for create asset", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.Requester = requesterFrom(c)

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Asset uploaded successfully")
}

func (h *AssetHandler) ListAssets(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), c.Query("user_id"), requesterFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := pathParam(c, "id", "Asset ID")
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

func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	id, err := pathParam(c, "id", "Asset ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, requesterFrom(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset deleted successfully", nil)
}
