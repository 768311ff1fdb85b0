package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/certificate/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

type ListCertificatesQuery struct {
	UserID    string
	GroupName string
	Page      int
	PageSize  int
	Requester common.Requester
}

type ListCertificatesResult struct {
	Certificates []*dto.CertificateDTO
	Total        int64
}

type ListCertificatesUseCase struct {
	certRepo certificate.Repository
	logger   logger.Interface
}

func NewListCertificatesUseCase(certRepo certificate.Repository, logger logger.Interface) *ListCertificatesUseCase {
	return &ListCertificatesUseCase{certRepo: certRepo, logger: logger}
}

// Execute lists one user's certificates. Only admins may omit user_id.
func (uc *ListCertificatesUseCase) Execute(ctx context.Context, query ListCertificatesQuery) (*ListCertificatesResult, error) {
	if query.UserID == "" && !query.Requester.IsAdmin() {
		query.UserID = query.Requester.UserID
	}
	if query.UserID != "" {
		if err := query.Requester.RequireAccess(query.UserID); err != nil {
			return nil, err
		}
	}

	list, total, err := uc.certRepo.List(ctx, certificate.ListFilter{
		UserID:    query.UserID,
		GroupName: utils.NormalizeText(query.GroupName),
		Page:      query.Page,
		PageSize:  query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list certificates", "error", err, "user_id", query.UserID)
		return nil, errors.NewInternalError("failed to list certificates")
	}

	return &ListCertificatesResult{
		Certificates: dto.ToCertificateDTOList(list),
		Total:        total,
	}, nil
}
