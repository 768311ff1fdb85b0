package services

import (
	"context"
	"fmt"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/constants"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

// PlanResolver finds the plan that governs a user: the first ACTIVE
// subscription wins, otherwise the configured default plan applies.
type PlanResolver struct {
	subs          ActiveSubscriptionFinder
	plans         PlanGetter
	defaultPlanID string
	logger        logger.Interface
}

func NewPlanResolver(subs ActiveSubscriptionFinder, plans PlanGetter, defaultPlanID string, logger logger.Interface) *PlanResolver {
	if defaultPlanID == "" {
		defaultPlanID = constants.BaselinePlanID
	}
	return &PlanResolver{
		subs:          subs,
		plans:         plans,
		defaultPlanID: defaultPlanID,
		logger:        logger,
	}
}

// Resolve returns plan.ErrPlanNotConfigured when the resolved plan row is
// missing and no built-in definition exists for it.
func (r *PlanResolver) Resolve(ctx context.Context, userID string) (*plan.Plan, error) {
	planID := r.defaultPlanID

	sub, err := r.subs.FindFirstActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active subscription: %w", err)
	}
	if sub != nil {
		planID = sub.PackageID()
	}

	p, err := r.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %s: %w", planID, err)
	}
	if p != nil {
		return p, nil
	}

	if fallback, ok := plan.Fallback(planID); ok {
		r.logger.Warnw("plan row missing, using built-in definition",
			"plan_id", planID,
			"user_id", userID,
		)
		return fallback, nil
	}

	r.logger.Errorw("resolved plan is not configured",
		"plan_id", planID,
		"user_id", userID,
	)
	return nil, fmt.Errorf("%w: %s", plan.ErrPlanNotConfigured, planID)
}
