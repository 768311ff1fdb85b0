package usecases

import "context"

// ActiveSubscriptionCounter reports how many ACTIVE subscriptions still
// reference a plan.
type ActiveSubscriptionCounter interface {
	CountActiveByPackage(ctx context.Context, packageID string) (int64, error)
}
