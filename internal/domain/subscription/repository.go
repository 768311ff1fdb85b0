package subscription

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s *Subscription) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	ListByUser(ctx context.Context, userID string) ([]*Subscription, error)
	// FindFirstActiveByUser returns the ACTIVE subscription with the lowest
	// id, or nil when the user has none.
	FindFirstActiveByUser(ctx context.Context, userID string) (*Subscription, error)
	FindExpired(ctx context.Context, now time.Time) ([]*Subscription, error)
	Update(ctx context.Context, s *Subscription) error
	CountActiveByPackage(ctx context.Context, packageID string) (int64, error)
}
