package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/document"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

// RenderVerificationUseCase produces the QR code and the PDF document that
// point to a certificate's verification page.
type RenderVerificationUseCase struct {
	certRepo  certificate.Repository
	pdf       PDFRenderer
	verifyURL VerifyURLBuilder
	qrSize    int
	logger    logger.Interface
}

func NewRenderVerificationUseCase(
	certRepo certificate.Repository,
	pdf PDFRenderer,
	verifyURL VerifyURLBuilder,
	qrSize int,
	logger logger.Interface,
) *RenderVerificationUseCase {
	return &RenderVerificationUseCase{
		certRepo:  certRepo,
		pdf:       pdf,
		verifyURL: verifyURL,
		qrSize:    qrSize,
		logger:    logger,
	}
}

// QRCode returns a PNG. It only needs the certificate to exist.
func (uc *RenderVerificationUseCase) QRCode(ctx context.Context, id string) ([]byte, error) {
	c, err := load(ctx, uc.certRepo, uc.logger, id)
	if err != nil {
		return nil, err
	}
	png, err := document.QRCode(uc.verifyURL.URL(c.ID()), uc.qrSize)
	if err != nil {
		uc.logger.Errorw("failed to render qr code", "error", err, "certificate_id", id)
		return nil, errors.NewInternalError("failed to render qr code")
	}
	return png, nil
}

// PDF requires the share token since the document names the recipient.
func (uc *RenderVerificationUseCase) PDF(ctx context.Context, id, token string) ([]byte, error) {
	c, err := load(ctx, uc.certRepo, uc.logger, id)
	if err != nil {
		return nil, err
	}
	if !c.MatchesToken(token) {
		return nil, errors.NewForbiddenError("a valid share token is required")
	}

	out, err := uc.pdf.Generate(document.Verification{
		CertificateID: c.ID(),
		RecipientName: c.RecipientName(),
		ProgramName:   c.ProgramName(),
		GroupName:     c.GroupName(),
		IssueDate:     c.IssueDate(),
		Revoked:       c.IsRevoked(),
		VerifyURL:     uc.verifyURL.URL(c.ID()),
	})
	if err != nil {
		uc.logger.Errorw("failed to render verification pdf", "error", err, "certificate_id", id)
		return nil, errors.NewInternalError("failed to render verification document")
	}
	return out, nil
}
