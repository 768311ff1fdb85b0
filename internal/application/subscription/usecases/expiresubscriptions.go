package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/subscription"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

// ExpireSubscriptionsUseCase is the job run by the subscription scheduler.
type ExpireSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
	now              func() time.Time
}

func NewExpireSubscriptionsUseCase(subscriptionRepo subscription.Repository, logger logger.Interface) *ExpireSubscriptionsUseCase {
	return &ExpireSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// Execute returns the number of subscriptions moved to EXPIRED. A failure
// on one row is logged and the rest are still processed.
func (uc *ExpireSubscriptionsUseCase) Execute(ctx context.Context) (int, error) {
	now := uc.now()
	expired, err := uc.subscriptionRepo.FindExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to find expired subscriptions: %w", err)
	}

	count := 0
	for _, s := range expired {
		if !s.IsExpiredAt(now) {
			continue
		}
		if err := s.ChangeStatus(subscription.StatusExpired); err != nil {
			uc.logger.Warnw("cannot expire subscription", "error", err, "subscription_id", s.ID())
			continue
		}
		if err := uc.subscriptionRepo.Update(ctx, s); err != nil {
			uc.logger.Errorw("failed to expire subscription", "error", err, "subscription_id", s.ID())
			continue
		}
		count++
		uc.logger.Infow("subscription expired",
			"subscription_id", s.ID(),
			"user_id", s.UserID(),
			"plan_id", s.PackageID(),
		)
	}
	return count, nil
}
