package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/certificate/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type RevokeCertificateUseCase struct {
	certRepo certificate.Repository
	logger   logger.Interface
}

func NewRevokeCertificateUseCase(certRepo certificate.Repository, logger logger.Interface) *RevokeCertificateUseCase {
	return &RevokeCertificateUseCase{certRepo: certRepo, logger: logger}
}

func (uc *RevokeCertificateUseCase) Execute(ctx context.Context, id string, requester common.Requester) (*dto.CertificateDTO, error) {
	c, err := loadOwned(ctx, uc.certRepo, uc.logger, id, requester)
	if err != nil {
		return nil, err
	}

	if !c.IsRevoked() {
		c.Revoke()
		if err := uc.certRepo.Update(ctx, c); err != nil {
			uc.logger.Errorw("failed to revoke certificate", "error", err, "certificate_id", id)
			return nil, errors.NewInternalError("failed to revoke certificate")
		}
		uc.logger.Infow("certificate revoked", "certificate_id", id, "by", requester.UserID)
	}

	return dto.ToCertificateDTO(c, true), nil
}
