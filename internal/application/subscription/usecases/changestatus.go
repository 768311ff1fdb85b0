package usecases

import (
	"context"
	stderrors "errors"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/subscription/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/subscription"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type ChangeStatusCommand struct {
	ID     uint   `json:"-"`
	Status string `json:"status" binding:"required"`
}

type ChangeStatusUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewChangeStatusUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{subscriptionRepo: subscriptionRepo, logger: logger}
}

// Execute rejects transitions out of CANCELLED or EXPIRED.
func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.SubscriptionDTO, error) {
	s, err := uc.subscriptionRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "subscription_id", cmd.ID)
		return nil, errors.NewInternalError("failed to change subscription status")
	}
	if s == nil {
		return nil, errors.NewNotFoundError(subscription.ErrSubscriptionNotFound.Error())
	}

	from := s.Status()
	if err := s.ChangeStatus(subscription.Status(cmd.Status)); err != nil {
		if stderrors.Is(err, subscription.ErrInvalidTransition) {
			return nil, errors.NewConflictError(err.Error())
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.subscriptionRepo.Update(ctx, s); err != nil {
		return nil, errors.NewInternalError("failed to change subscription status")
	}

	uc.logger.Infow("subscription status changed",
		"subscription_id", cmd.ID,
		"from", from,
		"to", s.Status(),
	)
	return dto.ToSubscriptionDTO(s), nil
}
