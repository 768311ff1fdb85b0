package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/plan/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/services/markdown"
)

type GetPlanUseCase struct {
	planRepo plan.Repository
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewGetPlanUseCase(planRepo plan.Repository, markdown markdown.MarkdownService, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{planRepo: planRepo, markdown: markdown, logger: logger}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, id string) (*dto.PlanDTO, error) {
	p, err := uc.planRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", id)
		return nil, errors.NewInternalError("failed to get plan")
	}
	if p == nil {
		return nil, notFound(id)
	}
	return dto.ToPlanDTO(p, uc.markdown), nil
}
