package mappers

import (
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/subscription"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
)

func SubscriptionToEntity(m *models.SubscriptionModel) *subscription.Subscription {
	if m == nil {
		return nil
	}
	return subscription.ReconstructSubscription(
		m.ID,
		m.UserID,
		m.PackageID,
		subscription.Status(m.Status),
		m.StartsAt,
		m.ExpiresAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func SubscriptionToModel(s *subscription.Subscription) *models.SubscriptionModel {
	return &models.SubscriptionModel{
		ID:        s.ID(),
		UserID:    s.UserID(),
		PackageID: s.PackageID(),
		Status:    string(s.Status()),
		StartsAt:  s.StartsAt(),
		ExpiresAt: s.ExpiresAt(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func SubscriptionsToEntities(ms []*models.SubscriptionModel) []*subscription.Subscription {
	out := make([]*subscription.Subscription, 0, len(ms))
	for _, m := range ms {
		out = append(out, SubscriptionToEntity(m))
	}
	return out
}
