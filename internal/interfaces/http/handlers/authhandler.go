package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	useruc "github.com/seyidturgut/certifix.ai-sub001/internal/application/user/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

type AuthHandler struct {
	registerUC registerUseCase
	loginUC    loginUseCase
	logger     logger.Interface
}

func NewAuthHandler(registerUC registerUseCase, loginUC loginUseCase, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logger:     logger,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var cmd useruc.RegisterCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Registration successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var cmd useruc.LoginCommand
	if err := bindJSON(c, &cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}
