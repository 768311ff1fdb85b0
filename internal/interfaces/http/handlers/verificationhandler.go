package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

// VerificationHandler serves the public certificate lookup. A matching
// ?token= share token unlocks the full record and the PDF.
type VerificationHandler struct {
	verifyUC verifyCertificateUseCase
	renderUC renderVerificationUseCase
	logger   logger.Interface
}

func NewVerificationHandler(verifyUC verifyCertificateUseCase, renderUC renderVerificationUseCase, logger logger.Interface) *VerificationHandler {
	return &VerificationHandler{
		verifyUC: verifyUC,
		renderUC: renderUC,
		logger:   logger,
	}
}

func (h *VerificationHandler) Verify(c *gin.Context) {
	id, err := pathParam(c, "id", "Certificate ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.verifyUC.Execute(c.Request.Context(), id, c.Query("token"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Body())
}

func (h *VerificationHandler) QRCode(c *gin.Context) {
	id, err := pathParam(c, "id", "Certificate ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	png, err := h.renderUC.QRCode(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", png)
}

func (h *VerificationHandler) PDF(c *gin.Context) {
	id, err := pathParam(c, "id", "Certificate ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pdf, err := h.renderUC.PDF(c.Request.Context(), id, c.Query("token"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "certificate-"+id+".pdf"))
	c.Header("Cache-Control", "private, no-store")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
