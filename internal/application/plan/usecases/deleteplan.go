package usecases

import (
	"context"
	"fmt"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type DeletePlanUseCase struct {
	planRepo plan.Repository
	subs     ActiveSubscriptionCounter
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo plan.Repository, subs ActiveSubscriptionCounter, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{planRepo: planRepo, subs: subs, logger: logger}
}

// Execute refuses to delete a plan that active subscriptions still point
// to, since resolution for those users would then fail.
func (uc *DeletePlanUseCase) Execute(ctx context.Context, id string) error {
	exists, err := uc.planRepo.ExistsByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to check plan existence", "error", err, "plan_id", id)
		return errors.NewInternalError("failed to delete plan")
	}
	if !exists {
		return notFound(id)
	}

	active, err := uc.subs.CountActiveByPackage(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to count active subscriptions", "error", err, "plan_id", id)
		return errors.NewInternalError("failed to delete plan")
	}
	if active > 0 {
		return errors.NewConflictError(plan.ErrPlanInUse.Error(), fmt.Sprintf("active_subscriptions=%d", active))
	}

	if err := uc.planRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete plan", "error", err, "plan_id", id)
		return errors.NewInternalError("failed to delete plan")
	}

	uc.logger.Infow("plan deleted", "plan_id", id)
	return nil
}
