package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	certuc "github.com/seyidturgut/certifix.ai-sub001/internal/application/certificate/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

type CertificateHandler struct {
	issueUC     issueCertificateUseCase
	bulkIssueUC bulkIssueCertificatesUseCase
	listUC      listCertificatesUseCase
	getUC       getCertificateUseCase
	revokeUC    revokeCertificateUseCase
	deleteUC    deleteCertificateUseCase
	logger      logger.Interface
}

func NewCertificateHandler(
	issueUC issueCertificateUseCase,
	bulkIssueUC bulkIssueCertificatesUseCase,
	listUC listCertificatesUseCase,
	getUC getCertificateUseCase,
	revokeUC revokeCertificateUseCase,
	deleteUC deleteCertificateUseCase,
	logger logger.Interface,
) *CertificateHandler {
	return &CertificateHandler{
		issueUC:     issueUC,
		bulkIssueUC: bulkIssueUC,
		listUC:      listUC,
		getUC:       getUC,
		revokeUC:    revokeUC,
		deleteUC:    deleteUC,
		logger:      logger,
	}
}

type BulkIssueRequest struct {
	UserID       string                           `json:"user_id"`
	Certificates []certuc.IssueCertificateCommand `json:"certificates"`
}

func (h *CertificateHandler) IssueCertificate(c *gin.Context) {
	var cmd certuc.IssueCertificateCommand
	if err := bindJSON(c, &cmd); err != nil {
		h.logger.Warnw("invalid request body for issue certificate", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.Requester = requesterFrom(c)

	result, err := h.issueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Certificate issued successfully")
}

func (h *CertificateHandler) BulkIssueCertificates(c *gin.Context) {
	var req BulkIssueRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for bulk issue", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.bulkIssueUC.Execute(c.Request.Context(), certuc.BulkIssueCertificatesCommand{
		UserID:       req.UserID,
		Certificates: req.Certificates,
		Requester:    requesterFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Certificates issued successfully")
}

func (h *CertificateHandler) ListCertificates(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), certuc.ListCertificatesQuery{
		UserID:    c.Query("user_id"),
		GroupName: c.Query("group_name"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		Requester: requesterFrom(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Certificates, result.Total, pagination.Page, pagination.PageSize)
}

func (h *CertificateHandler) GetCertificate(c *gin.Context) {
	id, err := pathParam(c, "id", "Certificate ID")
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

func (h *CertificateHandler) RevokeCertificate(c *gin.Context) {
	id, err := pathParam(c, "id", "Certificate ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.revokeUC.Execute(c.Request.Context(), id, requesterFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Certificate revoked", result)
}

func (h *CertificateHandler) DeleteCertificate(c *gin.Context) {
	id, err := pathParam(c, "id", "Certificate ID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, requesterFrom(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Certificate deleted successfully", nil)
}
