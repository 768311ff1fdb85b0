package dto

import (
	"time"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/subscription"
)

type SubscriptionDTO struct {
	ID        uint       `json:"id"`
	UserID    string     `json:"user_id"`
	PackageID string     `json:"package_id"`
	Status    string     `json:"status"`
	StartsAt  time.Time  `json:"starts_at"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func ToSubscriptionDTO(s *subscription.Subscription) *SubscriptionDTO {
	if s == nil {
		return nil
	}
	return &SubscriptionDTO{
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

func ToSubscriptionDTOList(list []*subscription.Subscription) []*SubscriptionDTO {
	out := make([]*SubscriptionDTO, 0, len(list))
	for _, s := range list {
		out = append(out, ToSubscriptionDTO(s))
	}
	return out
}
