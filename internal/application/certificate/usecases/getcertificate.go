package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/certificate/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type GetCertificateUseCase struct {
	certRepo certificate.Repository
	logger   logger.Interface
}

func NewGetCertificateUseCase(certRepo certificate.Repository, logger logger.Interface) *GetCertificateUseCase {
	return &GetCertificateUseCase{certRepo: certRepo, logger: logger}
}

func (uc *GetCertificateUseCase) Execute(ctx context.Context, id string, requester common.Requester) (*dto.CertificateDTO, error) {
	c, err := loadOwned(ctx, uc.certRepo, uc.logger, id, requester)
	if err != nil {
		return nil, err
	}
	return dto.ToCertificateDTO(c, true), nil
}

// loadOwned fetches a certificate the requester is allowed to manage.
// Someone else's certificate is reported as not found.
func loadOwned(ctx context.Context, repo certificate.Repository, log logger.Interface, id string, requester common.Requester) (*certificate.Certificate, error) {
	c, err := load(ctx, repo, log, id)
	if err != nil {
		return nil, err
	}
	if !requester.CanAccess(c.UserID()) {
		return nil, errors.NewNotFoundError(certificate.ErrCertificateNotFound.Error())
	}
	return c, nil
}

func load(ctx context.Context, repo certificate.Repository, log logger.Interface, id string) (*certificate.Certificate, error) {
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get certificate", "error", err, "certificate_id", id)
		return nil, errors.NewInternalError("failed to get certificate")
	}
	if c == nil {
		return nil, errors.NewNotFoundError(certificate.ErrCertificateNotFound.Error())
	}
	return c, nil
}
