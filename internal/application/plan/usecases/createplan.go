package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/plan/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/mappers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/services/markdown"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

type CreatePlanCommand struct {
	ID          string          `json:"id" validate:"required,max=50"`
	Name        string          `json:"name" validate:"required,max=100"`
	Price       *float64        `json:"price" validate:"omitempty,gte=0"`
	YearlyPrice *float64        `json:"yearly_price" validate:"omitempty,gte=0"`
	BillingType string          `json:"billing_type"`
	Description string          `json:"description"`
	Limits      json.RawMessage `json:"limits"`
	Features    json.RawMessage `json:"features"`
	IsActive    *bool           `json:"is_active"`
}

type CreatePlanUseCase struct {
	planRepo plan.Repository
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewCreatePlanUseCase(
	planRepo plan.Repository,
	markdown markdown.MarkdownService,
	logger logger.Interface,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		markdown: markdown,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}
	if !plan.IsValidID(cmd.ID) {
		return nil, errors.NewValidationError("id must contain only lowercase letters, digits, '_' or '-'")
	}

	exists, err := uc.planRepo.ExistsByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to check plan existence", "error", err, "plan_id", cmd.ID)
		return nil, errors.NewInternalError("failed to create plan")
	}
	if exists {
		return nil, errors.NewConflictError(plan.ErrPlanExists.Error(), cmd.ID)
	}

	limits, err := decodeLimits(cmd.Limits)
	if err != nil {
		return nil, err
	}
	features, err := decodeFeatures(cmd.Features)
	if err != nil {
		return nil, err
	}

	p, err := plan.NewPlan(cmd.ID, cmd.Name, plan.BillingType(cmd.BillingType), limits, features)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := p.SetPricing(cmd.Price, cmd.YearlyPrice); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	p.SetDescription(cmd.Description)
	if cmd.IsActive != nil && !*cmd.IsActive {
		p.Deactivate()
	}

	if err := uc.planRepo.Create(ctx, p); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(plan.ErrPlanExists.Error(), cmd.ID)
		}
		uc.logger.Errorw("failed to persist plan", "error", err, "plan_id", cmd.ID)
		return nil, errors.NewInternalError("failed to create plan")
	}

	uc.logger.Infow("plan created", "plan_id", p.ID(), "name", p.Name())
	return dto.ToPlanDTO(p, uc.markdown), nil
}

func decodeLimits(raw json.RawMessage) (plan.Limits, error) {
	if !utils.IsAbsentJSON(raw) && !utils.IsJSONObjectOrString(raw) {
		return nil, errors.NewValidationError("limits must be an object of non-negative integers")
	}
	limits, err := mappers.DecodeLimits([]byte(raw))
	if err != nil {
		return nil, errors.NewValidationError("limits must be an object of non-negative integers", err.Error())
	}
	return limits, nil
}

func decodeFeatures(raw json.RawMessage) (plan.Features, error) {
	if !utils.IsAbsentJSON(raw) && !utils.IsJSONObjectOrString(raw) {
		return nil, errors.NewValidationError("features must be an object of booleans")
	}
	features, err := mappers.DecodeFeatures([]byte(raw))
	if err != nil {
		return nil, errors.NewValidationError("features must be an object of booleans", err.Error())
	}
	return features, nil
}

func notFound(id string) error {
	return errors.NewNotFoundError(plan.ErrPlanNotFound.Error(), fmt.Sprintf("plan_id=%s", id))
}
