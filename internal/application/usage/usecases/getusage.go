package usecases

import (
	"context"
	stderrors "errors"

	plandto "github.com/seyidturgut/certifix.ai-sub001/internal/application/plan/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/usage/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/usage/services"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/services/markdown"
)

type GetUsageUseCase struct {
	guard    *services.LimitGuard
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewGetUsageUseCase(guard *services.LimitGuard, markdown markdown.MarkdownService, logger logger.Interface) *GetUsageUseCase {
	return &GetUsageUseCase{guard: guard, markdown: markdown, logger: logger}
}

func (uc *GetUsageUseCase) Execute(ctx context.Context, userID string) (*dto.UsageDTO, error) {
	if userID == "" {
		return nil, errors.NewValidationError("user_id is required")
	}

	snap, err := uc.guard.Snapshot(ctx, userID)
	if err != nil {
		if stderrors.Is(err, plan.ErrPlanNotConfigured) {
			return nil, errors.NewInternalError("plan not configured", err.Error())
		}
		uc.logger.Errorw("failed to compute usage", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to compute usage")
	}

	return &dto.UsageDTO{
		Plan:  plandto.ToPlanDTO(snap.Plan, uc.markdown),
		Usage: snap.Usage,
	}, nil
}
