package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	planuc "github.com/seyidturgut/certifix.ai-sub001/internal/application/plan/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC createPlanUseCase
	updatePlanUC updatePlanUseCase
	getPlanUC    getPlanUseCase
	listPlansUC  listPlansUseCase
	deletePlanUC deletePlanUseCase
	logger       logger.Interface
}

func NewPlanHandler(
	createPlanUC createPlanUseCase,
	updatePlanUC updatePlanUseCase,
	getPlanUC getPlanUseCase,
	listPlansUC listPlansUseCase,
	deletePlanUC deletePlanUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC: createPlanUC,
		updatePlanUC: updatePlanUC,
		getPlanUC:    getPlanUC,
		listPlansUC:  listPlansUC,
		deletePlanUC: deletePlanUC,
		logger:       logger,
	}
}

// UpdatePlanRequest is sparse. limits and features may be sent as objects
// or as JSON-encoded strings.
type UpdatePlanRequest struct {
	Name        *string         `json:"name"`
	Price       *float64        `json:"price"`
	YearlyPrice *float64        `json:"yearly_price"`
	BillingType *string         `json:"billing_type"`
	Description *string         `json:"description"`
	Limits      json.RawMessage `json:"limits"`
	Features    json.RawMessage `json:"features"`
	IsActive    *bool           `json:"is_active"`
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var cmd planuc.CreatePlanCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	planID, err := pathParam(c, "id", "Plan ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update plan",
			"plan_id", planID,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := planuc.UpdatePlanCommand{
		ID:          planID,
		Name:        req.Name,
		Price:       req.Price,
		YearlyPrice: req.YearlyPrice,
		BillingType: req.BillingType,
		Description: req.Description,
		Limits:      req.Limits,
		Features:    req.Features,
		IsActive:    req.IsActive,
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID, err := pathParam(c, "id", "Plan ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlanUC.Execute(c.Request.Context(), planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPlans returns every plan, or only active ones with ?active=true.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	onlyActive := c.Query("active") == "true"

	result, err := h.listPlansUC.Execute(c.Request.Context(), onlyActive)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PlanHandler) DeletePlan(c *gin.Context) {
	planID, err := pathParam(c, "id", "Plan ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePlanUC.Execute(c.Request.Context(), planID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan deleted successfully", nil)
}
