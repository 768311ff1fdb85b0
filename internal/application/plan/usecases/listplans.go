package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/plan/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/services/markdown"
)

type ListPlansUseCase struct {
	planRepo plan.Repository
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo plan.Repository, markdown markdown.MarkdownService, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo, markdown: markdown, logger: logger}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, onlyActive bool) ([]*dto.PlanDTO, error) {
	plans, err := uc.planRepo.List(ctx, onlyActive)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err, "only_active", onlyActive)
		return nil, errors.NewInternalError("failed to list plans")
	}
	return dto.ToPlanDTOList(plans, uc.markdown), nil
}
