package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/testutil"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/subscription"
	apperrors "github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
)

func TestAssignSubscription(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SeedPlan(t, "profesyonel", plan.Limits{plan.LimitTrainings: 10})
	uc := NewAssignSubscriptionUseCase(env.Subscriptions, env.Plans, env.Logger)
	ctx := context.Background()

	out, err := uc.Execute(ctx, AssignSubscriptionCommand{UserID: "alice", PackageID: "profesyonel"})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "ACTIVE", out.Status)

	active, err := env.Subscriptions.FindFirstActiveByUser(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "profesyonel", active.PackageID())

	_, err = uc.Execute(ctx, AssignSubscriptionCommand{UserID: "alice", PackageID: "missing"})
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = uc.Execute(ctx, AssignSubscriptionCommand{UserID: "alice", PackageID: "profesyonel", Status: "active"})
	assert.True(t, apperrors.IsValidationError(err))

	start := time.Now()
	_, err = uc.Execute(ctx, AssignSubscriptionCommand{UserID: "alice", PackageID: "profesyonel", StartsAt: &start, ExpiresAt: &start})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestChangeStatus(t *testing.T) {
	env := testutil.NewEnv(t)
	s := env.Subscribe(t, "alice", "profesyonel")
	uc := NewChangeStatusUseCase(env.Subscriptions, env.Logger)
	ctx := context.Background()

	out, err := uc.Execute(ctx, ChangeStatusCommand{ID: s.ID(), Status: "CANCELLED"})
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", out.Status)

	_, err = uc.Execute(ctx, ChangeStatusCommand{ID: s.ID(), Status: "ACTIVE"})
	assert.True(t, apperrors.IsConflictError(err))

	_, err = uc.Execute(ctx, ChangeStatusCommand{ID: 9999, Status: "ACTIVE"})
	assert.True(t, apperrors.IsNotFoundError(err))

	active, err := env.Subscriptions.FindFirstActiveByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestListUserSubscriptions(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Subscribe(t, "alice", "profesyonel")
	env.Subscribe(t, "bob", "profesyonel")
	uc := NewListUserSubscriptionsUseCase(env.Subscriptions, env.Logger)
	ctx := context.Background()

	list, err := uc.Execute(ctx, "alice", common.Requester{UserID: "alice", Role: "user"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "alice", list[0].UserID)

	_, err = uc.Execute(ctx, "alice", common.Requester{UserID: "bob", Role: "user"})
	assert.Equal(t, apperrors.ErrorTypeForbidden, apperrors.GetAppError(err).Type)

	list, err = uc.Execute(ctx, "bob", common.Requester{UserID: "root", Role: "admin"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestExpireSubscriptions(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	start := time.Now().Add(-72 * time.Hour)
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	lapsed, err := subscription.NewSubscription("alice", "profesyonel", subscription.StatusActive, start, &past)
	require.NoError(t, err)
	require.NoError(t, env.Subscriptions.Create(ctx, lapsed))
	running, err := subscription.NewSubscription("bob", "profesyonel", subscription.StatusActive, start, &future)
	require.NoError(t, err)
	require.NoError(t, env.Subscriptions.Create(ctx, running))

	uc := NewExpireSubscriptionsUseCase(env.Subscriptions, env.Logger)
	n, err := uc.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	reloaded, err := env.Subscriptions.GetByID(ctx, lapsed.ID())
	require.NoError(t, err)
	assert.Equal(t, subscription.StatusExpired, reloaded.Status())

	n, err = uc.Execute(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
