package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/certificate/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/usage/services"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/usage"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/email"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/goroutine"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

const notifyTimeout = 30 * time.Second

type IssueCertificateCommand struct {
	ID             string           `json:"id" validate:"omitempty,max=64"`
	UserID         string           `json:"user_id" validate:"required,max=64"`
	RecipientName  string           `json:"recipient_name" validate:"required,max=255"`
	RecipientEmail *string          `json:"recipient_email" validate:"omitempty,email,max=255"`
	ProgramName    string           `json:"program_name" validate:"required,max=255"`
	IssueDate      string           `json:"issue_date" validate:"required"`
	DesignJSON     json.RawMessage  `json:"design_json" validate:"required"`
	Orientation    string           `json:"orientation" validate:"omitempty,oneof=landscape portrait"`
	PreviewImage   *string          `json:"preview_image"`
	GroupName      string           `json:"group_name" validate:"required,max=255"`
	Requester      common.Requester `json:"-"`
}

// IssueCertificateUseCase creates one certificate after the training and
// per-training limits of the owner's plan have been checked.
type IssueCertificateUseCase struct {
	issuer *issuer
}

func NewIssueCertificateUseCase(
	certRepo certificate.Repository,
	guard *services.LimitGuard,
	tokens ShareTokenGenerator,
	notifier IssueNotifier,
	recorder IssueRecorder,
	verifyURL VerifyURLBuilder,
	logger logger.Interface,
) *IssueCertificateUseCase {
	return &IssueCertificateUseCase{
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

func (uc *IssueCertificateUseCase) Execute(ctx context.Context, cmd IssueCertificateCommand) (*dto.IssueResultDTO, error) {
	if err := cmd.Requester.RequireAccess(cmd.UserID); err != nil {
		return nil, err
	}

	in, err := buildIssue(cmd)
	if err != nil {
		return nil, err
	}

	created, err := uc.issuer.issue(ctx, cmd.UserID, []certificate.Issue{in}, false)
	if err != nil {
		return nil, err
	}

	c := created[0]
	return &dto.IssueResultDTO{ID: c.ID(), ShareToken: c.ShareToken()}, nil
}

// issuer holds what single and bulk issue share.
type issuer struct {
	certRepo  certificate.Repository
	guard     *services.LimitGuard
	tokens    ShareTokenGenerator
	notifier  IssueNotifier
	recorder  IssueRecorder
	verifyURL VerifyURLBuilder
	logger    logger.Interface
}

// issue inserts all items in one guarded transaction. Each item is checked
// against the usage left by the items before it; the first failure rolls
// back the whole batch.
func (i *issuer) issue(ctx context.Context, userID string, items []certificate.Issue, batch bool) ([]*certificate.Certificate, error) {
	var (
		created []*certificate.Certificate
		planID  string
	)

	err := i.guard.Run(ctx, userID, func(txCtx context.Context, snap *services.Snapshot) error {
		planID = snap.Plan.ID()
		limits := snap.Plan.Limits()
		current := snap.Usage
		created = created[:0]

		for idx, in := range items {
			exists, err := i.certRepo.ExistsByID(txCtx, in.ID)
			if err != nil {
				return err
			}
			if exists {
				return itemDetails(errors.NewConflictError(certificate.ErrCertificateExists.Error()), idx, batch)
			}

			inGroup, err := i.certRepo.CountInGroup(txCtx, userID, in.GroupName)
			if err != nil {
				return err
			}
			check := usage.CertificateCheck{Usage: current, GroupCertificates: inGroup}
			if err := usage.CheckCertificate(limits, check); err != nil {
				if batch {
					return &services.ItemError{Index: idx, Err: err}
				}
				return err
			}

			token, err := i.tokens.Generate()
			if err != nil {
				return fmt.Errorf("failed to generate share token: %w", err)
			}
			c, err := certificate.NewCertificate(in, token)
			if err != nil {
				return itemDetails(errors.NewValidationError(err.Error()), idx, batch)
			}
			if err := i.certRepo.Create(txCtx, c); err != nil {
				if errors.IsDuplicateError(err) {
					return itemDetails(errors.NewConflictError(certificate.ErrCertificateExists.Error()), idx, batch)
				}
				return err
			}

			if check.NewTraining() {
				current.Trainings++
			}
			current.Certificates++
			created = append(created, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	i.recorder.CertificatesIssued(planID, len(created))
	i.logger.Infow("certificates issued",
		"user_id", userID,
		"plan_id", planID,
		"count", len(created),
	)

	for _, c := range created {
		i.notify(c)
	}
	return created, nil
}

// notify runs after commit. Delivery failures are logged and never affect
// the issued certificate.
func (i *issuer) notify(c *certificate.Certificate) {
	if i.notifier == nil || c.RecipientEmail() == nil {
		return
	}
	msg := email.CertificateIssued{
		To:            *c.RecipientEmail(),
		RecipientName: c.RecipientName(),
		ProgramName:   c.ProgramName(),
		VerifyURL:     i.verifyURL.URL(c.ID()),
	}
	goroutine.SafeGo(i.logger, "certificate-issued-email", func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := i.notifier.SendCertificateIssued(ctx, msg); err != nil {
			i.logger.Warnw("failed to send certificate email",
				"certificate_id", c.ID(),
				"error", err,
			)
		}
	})
}

func itemDetails(appErr *errors.AppError, idx int, batch bool) error {
	if batch {
		appErr.Details = fmt.Sprintf("index=%d", idx)
	}
	return appErr
}

// buildIssue normalizes and validates one command. Text that is compared
// or displayed is normalized before validation so that blank input is
// rejected.
func buildIssue(cmd IssueCertificateCommand) (certificate.Issue, error) {
	cmd.RecipientName = utils.NormalizeText(cmd.RecipientName)
	cmd.ProgramName = utils.NormalizeText(cmd.ProgramName)
	cmd.GroupName = utils.NormalizeText(cmd.GroupName)
	cmd.RecipientEmail = utils.NormalizeOptional(cmd.RecipientEmail)
	cmd.ID = strings.TrimSpace(cmd.ID)

	if err := utils.ValidateStruct(cmd); err != nil {
		return certificate.Issue{}, err
	}
	if !utils.IsJSONDocument(cmd.DesignJSON) {
		return certificate.Issue{}, errors.NewValidationError("design_json must be a JSON object or array")
	}

	issueDate, err := parseIssueDate(cmd.IssueDate)
	if err != nil {
		return certificate.Issue{}, err
	}
	orientation, err := certificate.ParseOrientation(cmd.Orientation)
	if err != nil {
		return certificate.Issue{}, errors.NewValidationError(err.Error())
	}

	id := cmd.ID
	if id == "" {
		id = uuid.NewString()
	}

	return certificate.Issue{
		ID:             id,
		UserID:         cmd.UserID,
		RecipientName:  cmd.RecipientName,
		RecipientEmail: cmd.RecipientEmail,
		ProgramName:    cmd.ProgramName,
		IssueDate:      issueDate,
		DesignJSON:     []byte(cmd.DesignJSON),
		Orientation:    orientation,
		PreviewImage:   cmd.PreviewImage,
		GroupName:      cmd.GroupName,
	}, nil
}

// parseIssueDate accepts a calendar date or a full RFC 3339 timestamp.
func parseIssueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.NewValidationError("issue_date must be a date in YYYY-MM-DD format")
}
