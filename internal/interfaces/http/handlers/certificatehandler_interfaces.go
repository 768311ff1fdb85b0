package handlers

import (
	"context"

	certdto "github.com/seyidturgut/certifix.ai-sub001/internal/application/certificate/dto"
	certuc "github.com/seyidturgut/certifix.ai-sub001/internal/application/certificate/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
)

// Use case interfaces for CertificateHandler and VerificationHandler

type issueCertificateUseCase interface {
	Execute(ctx context.Context, cmd certuc.IssueCertificateCommand) (*certdto.IssueResultDTO, error)
}

type bulkIssueCertificatesUseCase interface {
	Execute(ctx context.Context, cmd certuc.BulkIssueCertificatesCommand) (*certdto.BulkIssueResultDTO, error)
}

type listCertificatesUseCase interface {
	Execute(ctx context.Context, query certuc.ListCertificatesQuery) (*certuc.ListCertificatesResult, error)
}

type getCertificateUseCase interface {
	Execute(ctx context.Context, id string, requester common.Requester) (*certdto.CertificateDTO, error)
}

type revokeCertificateUseCase interface {
	Execute(ctx context.Context, id string, requester common.Requester) (*certdto.CertificateDTO, error)
}

type deleteCertificateUseCase interface {
	Execute(ctx context.Context, id string, requester common.Requester) error
}

type verifyCertificateUseCase interface {
	Execute(ctx context.Context, id, token string) (*certuc.VerifyCertificateResult, error)
}

type renderVerificationUseCase interface {
	QRCode(ctx context.Context, id string) ([]byte, error)
	PDF(ctx context.Context, id, token string) ([]byte, error)
}
