package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/testutil"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/design"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/usage"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/user"
	apperrors "github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
)

type fakeRecorder struct {
	rejections map[string]int
}

func (r *fakeRecorder) LimitRejected(planID, tag string) {
	if r.rejections == nil {
		r.rejections = map[string]int{}
	}
	r.rejections[planID+"/"+tag]++
}

// newGuard seeds user u1 so Run has a row to lock.
func newGuard(t *testing.T, env *testutil.Env, defaultPlan string) (*LimitGuard, *fakeRecorder) {
	env.SeedUser(t, "u1", user.RoleUser)
	rec := &fakeRecorder{}
	resolver := NewPlanResolver(env.Subscriptions, env.Plans, defaultPlan, env.Logger)
	return NewLimitGuard(env.TxManager, env.Users, resolver, env.Usage, rec, env.Logger), rec
}

func TestPlanResolver_DefaultsToBaseline(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SeedPlan(t, "tek_egitim", plan.Limits{plan.LimitDesigns: 7})

	r := NewPlanResolver(env.Subscriptions, env.Plans, "", env.Logger)
	p, err := r.Resolve(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "tek_egitim", p.ID())
	assert.Equal(t, int64(7), p.Limits()[plan.LimitDesigns])
}

func TestPlanResolver_FirstActiveSubscriptionWins(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SeedPlan(t, "tek_egitim", plan.Limits{})
	env.SeedPlan(t, "bootcamp", plan.Limits{plan.LimitTrainings: 3})
	env.Subscribe(t, "u1", "bootcamp")

	r := NewPlanResolver(env.Subscriptions, env.Plans, "tek_egitim", env.Logger)
	p, err := r.Resolve(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "bootcamp", p.ID())
}

func TestPlanResolver_BaselineFallbackWhenRowMissing(t *testing.T) {
	env := testutil.NewEnv(t)

	r := NewPlanResolver(env.Subscriptions, env.Plans, "tek_egitim", env.Logger)
	p, err := r.Resolve(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "tek_egitim", p.ID())
	assert.Equal(t, int64(1), p.Limits()[plan.LimitTrainings])
	assert.Equal(t, int64(100), p.Limits()[plan.LimitCertificatesPerTraining])
}

func TestPlanResolver_MissingNonBaselinePlanFails(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Subscribe(t, "u1", "kurumsal")

	r := NewPlanResolver(env.Subscriptions, env.Plans, "tek_egitim", env.Logger)
	_, err := r.Resolve(context.Background(), "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, plan.ErrPlanNotConfigured)
}

func TestLimitGuard_RunCommitsOnSuccess(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SeedPlan(t, "tek_egitim", plan.Limits{plan.LimitDesigns: 1})
	guard, _ := newGuard(t, env, "tek_egitim")
	uid := "u1"

	err := guard.Run(context.Background(), uid, func(ctx context.Context, snap *Snapshot) error {
		assert.Equal(t, int64(0), snap.Usage.Designs)
		d, err := design.NewDesign("d1", &uid, "First", []byte(`{}`), "", nil, false)
		require.NoError(t, err)
		return env.Designs.Create(ctx, d)
	})
	require.NoError(t, err)

	u, err := env.Usage.Aggregate(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.Designs)
}

func TestLimitGuard_LimitErrorRollsBackAndIsCounted(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SeedPlan(t, "tek_egitim", plan.Limits{plan.LimitDesigns: 1})
	guard, rec := newGuard(t, env, "tek_egitim")
	uid := "u1"

	err := guard.Run(context.Background(), uid, func(ctx context.Context, snap *Snapshot) error {
		d, err := design.NewDesign("d1", &uid, "First", []byte(`{}`), "", nil, false)
		require.NoError(t, err)
		if err := env.Designs.Create(ctx, d); err != nil {
			return err
		}
		return &usage.LimitExceededError{Tag: usage.TagDesigns, Limit: 1, Current: 1}
	})

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeLimitExceeded, appErr.Type)
	assert.Equal(t, "designs", appErr.LimitReached)
	assert.Contains(t, appErr.Message, "limit: 1")
	assert.Equal(t, 1, rec.rejections["tek_egitim/designs"])

	got, err := env.Designs.GetByID(context.Background(), "d1")
	require.NoError(t, err)
	assert.Nil(t, got, "insert must be rolled back")
}

func TestLimitGuard_ItemIndexInDetails(t *testing.T) {
	env := testutil.NewEnv(t)
	guard, _ := newGuard(t, env, "tek_egitim")

	err := guard.Run(context.Background(), "u1", func(ctx context.Context, snap *Snapshot) error {
		return &ItemError{Index: 2, Err: &usage.LimitExceededError{Tag: usage.TagTrainings, Limit: 1}}
	})

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "trainings", appErr.LimitReached)
	assert.Equal(t, "index=2", appErr.Details)
}

func TestLimitGuard_UnconfiguredPlanIsInternal(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Subscribe(t, "u1", "kurumsal")
	guard, _ := newGuard(t, env, "tek_egitim")

	called := false
	err := guard.Run(context.Background(), "u1", func(ctx context.Context, snap *Snapshot) error {
		called = true
		return nil
	})

	assert.False(t, called)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	assert.Equal(t, "plan not configured", appErr.Message)
}

func TestLimitGuard_OtherErrorsAreInternal(t *testing.T) {
	env := testutil.NewEnv(t)
	guard, _ := newGuard(t, env, "tek_egitim")

	err := guard.Run(context.Background(), "u1", func(ctx context.Context, snap *Snapshot) error {
		return errors.New("disk on fire")
	})

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	assert.NotContains(t, appErr.Message, "disk")
}

func TestLimitGuard_UnknownUserIsNotFound(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SeedPlan(t, "tek_egitim", plan.Limits{plan.LimitDesigns: 1})
	guard, _ := newGuard(t, env, "tek_egitim")
	uid := "ghost"

	called := false
	err := guard.Run(context.Background(), uid, func(ctx context.Context, snap *Snapshot) error {
		called = true
		d, err := design.NewDesign("d1", &uid, "Orphan", []byte(`{}`), "", nil, false)
		require.NoError(t, err)
		return env.Designs.Create(ctx, d)
	})

	assert.False(t, called)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)

	u, err := env.Usage.Aggregate(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, int64(0), u.Designs)
}
