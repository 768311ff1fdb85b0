package services

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/usage"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/user"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

// Snapshot is the plan and usage a creation is checked against.
type Snapshot struct {
	Plan  *plan.Plan
	Usage usage.Usage
}

// LimitGuard runs creations for one user inside a transaction that holds
// the user's row lock, so the usage a check sees cannot change before the
// insert commits.
type LimitGuard struct {
	tx         TransactionRunner
	locker     UserLocker
	resolver   *PlanResolver
	aggregator Aggregator
	recorder   RejectionRecorder
	logger     logger.Interface
}

func NewLimitGuard(
	tx TransactionRunner,
	locker UserLocker,
	resolver *PlanResolver,
	aggregator Aggregator,
	recorder RejectionRecorder,
	logger logger.Interface,
) *LimitGuard {
	return &LimitGuard{
		tx:         tx,
		locker:     locker,
		resolver:   resolver,
		aggregator: aggregator,
		recorder:   recorder,
		logger:     logger,
	}
}

// Run locks userID, takes a snapshot and calls fn with the transactional
// context. Any error returned by fn rolls the transaction back. A
// *usage.LimitExceededError from fn is converted by Reject.
func (g *LimitGuard) Run(ctx context.Context, userID string, fn func(ctx context.Context, snap *Snapshot) error) error {
	var planID string
	err := g.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := g.locker.LockForUpdate(txCtx, userID); err != nil {
			return err
		}
		snap, err := g.Snapshot(txCtx, userID)
		if err != nil {
			return err
		}
		planID = snap.Plan.ID()
		return fn(txCtx, snap)
	})
	if err != nil {
		return g.Reject(userID, planID, err)
	}
	return nil
}

// Snapshot resolves the plan and aggregates usage without locking.
func (g *LimitGuard) Snapshot(ctx context.Context, userID string) (*Snapshot, error) {
	p, err := g.resolver.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	u, err := g.aggregator.Aggregate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate usage: %w", err)
	}
	return &Snapshot{Plan: p, Usage: u}, nil
}

// Reject translates errors raised during a guarded creation into
// AppErrors. Limit violations are counted and AppErrors pass through. An
// unknown user is a not-found error; anything else is internal.
func (g *LimitGuard) Reject(userID, planID string, err error) error {
	var limitErr *usage.LimitExceededError
	if stderrors.As(err, &limitErr) {
		g.recorder.LimitRejected(planID, string(limitErr.Tag))
		g.logger.Infow("creation rejected by plan limit",
			"user_id", userID,
			"plan_id", planID,
			"limit_reached", limitErr.Tag,
			"limit", limitErr.Limit,
			"current", limitErr.Current,
		)
		appErr := errors.NewLimitExceededError(string(limitErr.Tag), limitErr.Error())
		if prefix := indexPrefix(err); prefix != "" {
			appErr.Details = prefix
		}
		return appErr
	}

	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr
	}

	if stderrors.Is(err, user.ErrUserNotFound) {
		return errors.NewNotFoundError("user not found", userID)
	}

	if stderrors.Is(err, plan.ErrPlanNotConfigured) {
		return errors.NewInternalError("plan not configured", err.Error())
	}

	g.logger.Errorw("guarded creation failed", "error", err, "user_id", userID)
	return errors.NewInternalError("failed to check plan limits")
}

// ItemError marks the position of the failing item in a batch.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

func indexPrefix(err error) string {
	var itemErr *ItemError
	if stderrors.As(err, &itemErr) {
		return fmt.Sprintf("index=%d", itemErr.Index)
	}
	return ""
}
