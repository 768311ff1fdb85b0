package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type DeleteCertificateUseCase struct {
	certRepo certificate.Repository
	logger   logger.Interface
}

func NewDeleteCertificateUseCase(certRepo certificate.Repository, logger logger.Interface) *DeleteCertificateUseCase {
	return &DeleteCertificateUseCase{certRepo: certRepo, logger: logger}
}

// Execute frees the certificate's slot in its training; deleting the last
// certificate of a group frees the training too.
func (uc *DeleteCertificateUseCase) Execute(ctx context.Context, id string, requester common.Requester) error {
	if _, err := loadOwned(ctx, uc.certRepo, uc.logger, id, requester); err != nil {
		return err
	}
	if err := uc.certRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete certificate", "error", err, "certificate_id", id)
		return errors.NewInternalError("failed to delete certificate")
	}
	uc.logger.Infow("certificate deleted", "certificate_id", id, "by", requester.UserID)
	return nil
}
