package services

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/subscription"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/usage"
)

type ActiveSubscriptionFinder interface {
	FindFirstActiveByUser(ctx context.Context, userID string) (*subscription.Subscription, error)
}

type PlanGetter interface {
	GetByID(ctx context.Context, id string) (*plan.Plan, error)
}

// Aggregator computes a user's current usage. Implementations must read
// through the transaction carried by ctx.
type Aggregator interface {
	Aggregate(ctx context.Context, userID string) (usage.Usage, error)
}

type UserLocker interface {
	LockForUpdate(ctx context.Context, id string) error
}

type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RejectionRecorder counts limit rejections per plan and tag.
type RejectionRecorder interface {
	LimitRejected(planID, tag string)
}
