package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/subscription/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/subscription"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type ListUserSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListUserSubscriptionsUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ListUserSubscriptionsUseCase {
	return &ListUserSubscriptionsUseCase{subscriptionRepo: subscriptionRepo, logger: logger}
}

func (uc *ListUserSubscriptionsUseCase) Execute(ctx context.Context, userID string, requester common.Requester) ([]*dto.SubscriptionDTO, error) {
	if err := requester.RequireAccess(userID); err != nil {
		return nil, err
	}
	list, err := uc.subscriptionRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to list subscriptions")
	}
	return dto.ToSubscriptionDTOList(list), nil
}
