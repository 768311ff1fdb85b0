package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	designuc "github.com/seyidturgut/certifix.ai-sub001/internal/application/design/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

type DesignHandler struct {
	createUC createDesignUseCase
	listUC   listDesignsUseCase
	getUC    getDesignUseCase
	updateUC updateDesignUseCase
	deleteUC deleteDesignUseCase
	logger   logger.Interface
}

func NewDesignHandler(
	createUC createDesignUseCase,
	listUC listDesignsUseCase,
	getUC getDesignUseCase,
	updateUC updateDesignUseCase,
	deleteUC deleteDesignUseCase,
	logger logger.Interface,
) *DesignHandler {
	return &DesignHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

type UpdateDesignRequest struct {
	Name         *string         `json:"name"`
	DesignJSON   json.RawMessage `json:"design_json"`
	Orientation  *string         `json:"orientation"`
	PreviewImage *string         `json:"preview_image"`
}

func (h *DesignHandler) CreateDesign(c *gin.Context) {
	var cmd designuc.CreateDesignCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for create design", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.Requester = requesterFrom(c)

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Design created successfully")
}

// ListDesigns returns the user's designs followed by shared templates.
func (h *DesignHandler) ListDesigns(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), c.Query("user_id"), requesterFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DesignHandler) GetDesign(c *gin.Context) {
	id, err := pathParam(c, "id", "Design ID")
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

func (h *DesignHandler) UpdateDesign(c *gin.Context) {
	id, err := pathParam(c, "id", "Design ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDesignRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update design", "design_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), designuc.UpdateDesignCommand{
		ID:           id,
		Name:         req.Name,
		DesignJSON:   req.DesignJSON,
		Orientation:  req.Orientation,
		PreviewImage: req.PreviewImage,
		Requester:    requesterFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Design updated successfully", result)
}

func (h *DesignHandler) DeleteDesign(c *gin.Context) {
	id, err := pathParam(c, "id", "Design ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, requesterFrom(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Design deleted successfully", nil)
}
