package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/document"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/email"
)

type ShareTokenGenerator interface {
	Generate() (string, error)
}

// IssueNotifier delivers the certificate-issued mail.
type IssueNotifier interface {
	SendCertificateIssued(ctx context.Context, n email.CertificateIssued) error
}

type IssueRecorder interface {
	CertificatesIssued(planID string, n int)
}

// VerifyURLBuilder returns the public verification page of a certificate.
type VerifyURLBuilder interface {
	URL(certificateID string) string
}

type PDFRenderer interface {
	Generate(v document.Verification) ([]byte, error)
}
