package usecases

import (
	"context"
	"encoding/json"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/plan/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/services/markdown"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

// UpdatePlanCommand is a sparse patch: nil fields are left untouched.
// Limits and features, when given, replace the stored mapping; null
// counts as not given so a patch can never clear every limit by accident.
type UpdatePlanCommand struct {
	ID          string
	Name        *string
	Price       *float64
	YearlyPrice *float64
	BillingType *string
	Description *string
	Limits      json.RawMessage
	Features    json.RawMessage
	IsActive    *bool
}

type UpdatePlanUseCase struct {
	planRepo plan.Repository
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo plan.Repository, markdown markdown.MarkdownService, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{planRepo: planRepo, markdown: markdown, logger: logger}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	p, err := uc.planRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get plan for update", "error", err, "plan_id", cmd.ID)
		return nil, errors.NewInternalError("failed to update plan")
	}
	if p == nil {
		return nil, notFound(cmd.ID)
	}

	if err := applyPlanPatch(p, cmd); err != nil {
		return nil, err
	}

	if err := uc.planRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_id", cmd.ID)
		return nil, errors.NewInternalError("failed to update plan")
	}

	uc.logger.Infow("plan updated", "plan_id", p.ID())
	return dto.ToPlanDTO(p, uc.markdown), nil
}

func applyPlanPatch(p *plan.Plan, cmd UpdatePlanCommand) error {
	if cmd.Name != nil {
		if err := p.SetName(*cmd.Name); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Price != nil {
		if err := p.SetPrice(cmd.Price); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.YearlyPrice != nil {
		if err := p.SetYearlyPrice(cmd.YearlyPrice); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.BillingType != nil {
		if err := p.SetBillingType(plan.BillingType(*cmd.BillingType)); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		p.SetDescription(*cmd.Description)
	}
	if !utils.IsAbsentJSON(cmd.Limits) {
		limits, err := decodeLimits(cmd.Limits)
		if err != nil {
			return err
		}
		if err := p.ReplaceLimits(limits); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if !utils.IsAbsentJSON(cmd.Features) {
		features, err := decodeFeatures(cmd.Features)
		if err != nil {
			return err
		}
		p.ReplaceFeatures(features)
	}
	if cmd.IsActive != nil {
		if *cmd.IsActive {
			p.Activate()
		} else {
			p.Deactivate()
		}
	}
	return nil
}
