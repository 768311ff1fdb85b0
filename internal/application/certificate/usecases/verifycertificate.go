package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/certificate/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

// VerifyCertificateResult holds exactly one of Public and Full.
type VerifyCertificateResult struct {
	Public *dto.PublicCertificateDTO
	Full   *dto.CertificateDTO
}

// Body is the value to serialize for the response.
func (r *VerifyCertificateResult) Body() interface{} {
	if r.Full != nil {
		return r.Full
	}
	return r.Public
}

type VerifyCertificateUseCase struct {
	certRepo certificate.Repository
	logger   logger.Interface
}

func NewVerifyCertificateUseCase(certRepo certificate.Repository, logger logger.Interface) *VerifyCertificateUseCase {
	return &VerifyCertificateUseCase{certRepo: certRepo, logger: logger}
}

// Execute returns public fields to anyone and the full record when token
// matches the share token. A wrong token is not an error; it just yields
// the public view. Revoked certificates still verify.
func (uc *VerifyCertificateUseCase) Execute(ctx context.Context, id, token string) (*VerifyCertificateResult, error) {
	c, err := load(ctx, uc.certRepo, uc.logger, id)
	if err != nil {
		return nil, err
	}
	if c.MatchesToken(token) {
		full := dto.ToCertificateDTO(c, false)
		return &VerifyCertificateResult{Full: full}, nil
	}
	return &VerifyCertificateResult{Public: dto.ToPublicCertificateDTO(c)}, nil
}
