package usecases

import (
	"context"
	"time"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/subscription/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/subscription"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

type AssignSubscriptionCommand struct {
	UserID    string     `json:"user_id" validate:"required,max=64"`
	PackageID string     `json:"package_id" validate:"required,max=50"`
	Status    string     `json:"status" validate:"omitempty,oneof=ACTIVE PENDING CANCELLED EXPIRED"`
	StartsAt  *time.Time `json:"starts_at"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type AssignSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	planRepo         plan.Repository
	logger           logger.Interface
}

func NewAssignSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	planRepo plan.Repository,
	logger logger.Interface,
) *AssignSubscriptionUseCase {
	return &AssignSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		logger:           logger,
	}
}

// Execute does not touch existing subscriptions of the user. Plan
// resolution picks the oldest ACTIVE one, so callers that switch plans
// should cancel the previous subscription first.
func (uc *AssignSubscriptionUseCase) Execute(ctx context.Context, cmd AssignSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	p, err := uc.planRepo.GetByID(ctx, cmd.PackageID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PackageID)
		return nil, errors.NewInternalError("failed to assign subscription")
	}
	if p == nil {
		return nil, errors.NewNotFoundError(plan.ErrPlanNotFound.Error(), cmd.PackageID)
	}

	var startsAt time.Time
	if cmd.StartsAt != nil {
		startsAt = *cmd.StartsAt
	}
	s, err := subscription.NewSubscription(cmd.UserID, cmd.PackageID, subscription.Status(cmd.Status), startsAt, cmd.ExpiresAt)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, s); err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to assign subscription")
	}

	uc.logger.Infow("subscription assigned",
		"subscription_id", s.ID(),
		"user_id", cmd.UserID,
		"plan_id", cmd.PackageID,
		"status", s.Status(),
	)
	return dto.ToSubscriptionDTO(s), nil
}
