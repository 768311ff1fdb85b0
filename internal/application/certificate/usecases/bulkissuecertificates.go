package usecases

import (
	"context"
	"fmt"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/certificate/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/usage/services"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

// MaxBulkCertificates bounds one bulk request.
const MaxBulkCertificates = 500

type BulkIssueCertificatesCommand struct {
	UserID       string
	Certificates []IssueCertificateCommand
	Requester    common.Requester
}

// BulkIssueCertificatesUseCase issues a batch all-or-nothing.
type BulkIssueCertificatesUseCase struct {
	issuer *issuer
}

func NewBulkIssueCertificatesUseCase(
	certRepo certificate.Repository,
	guard *services.LimitGuard,
	tokens ShareTokenGenerator,
	notifier IssueNotifier,
	recorder IssueRecorder,
	verifyURL VerifyURLBuilder,
	logger logger.Interface,
) *BulkIssueCertificatesUseCase {
	return &BulkIssueCertificatesUseCase{
		issuer: &issuer{
			certRepo:  certRepo,
			guard:     guard,
			tokens:    tokens,
			notifier:  notifier,
			recorder:  recorder,
			verifyURL: verifyURL,
			logger:    logger,
		},
	}
}

func (uc *BulkIssueCertificatesUseCase) Execute(ctx context.Context, cmd BulkIssueCertificatesCommand) (*dto.BulkIssueResultDTO, error) {
	if cmd.UserID == "" {
		return nil, errors.NewValidationError("user_id is required")
	}
	if err := cmd.Requester.RequireAccess(cmd.UserID); err != nil {
		return nil, err
	}
	if len(cmd.Certificates) == 0 {
		return nil, errors.NewValidationError("certificates must not be empty")
	}
	if len(cmd.Certificates) > MaxBulkCertificates {
		return nil, errors.NewValidationError(fmt.Sprintf("at most %d certificates per request", MaxBulkCertificates))
	}

	items := make([]certificate.Issue, 0, len(cmd.Certificates))
	seen := make(map[string]int, len(cmd.Certificates))
	for idx, item := range cmd.Certificates {
		item.UserID = cmd.UserID
		in, err := buildIssue(item)
		if err != nil {
			if appErr := errors.GetAppError(err); appErr != nil {
				return nil, errors.NewValidationError(fmt.Sprintf("certificate %d: %s", idx, appErr.Message), appErr.Details)
			}
			return nil, err
		}
		if first, dup := seen[in.ID]; dup {
			return nil, errors.NewValidationError(fmt.Sprintf("certificate %d: duplicate id of certificate %d", idx, first))
		}
		seen[in.ID] = idx
		items = append(items, in)
	}

	created, err := uc.issuer.issue(ctx, cmd.UserID, items, true)
	if err != nil {
		return nil, err
	}

	out := &dto.BulkIssueResultDTO{
		Certificates: make([]dto.IssueResultDTO, 0, len(created)),
		Count:        len(created),
	}
	for _, c := range created {
		out.Certificates = append(out.Certificates, dto.IssueResultDTO{ID: c.ID(), ShareToken: c.ShareToken()})
	}
	return out, nil
}
