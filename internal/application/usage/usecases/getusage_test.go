package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/testutil"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/usage/services"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/asset"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	apperrors "github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
)

type nopRecorder struct{}

func (nopRecorder) LimitRejected(string, string) {}

func newGetUsage(env *testutil.Env) *GetUsageUseCase {
	resolver := services.NewPlanResolver(env.Subscriptions, env.Plans, "tek_egitim", env.Logger)
	guard := services.NewLimitGuard(env.TxManager, env.Users, resolver, env.Usage, nopRecorder{}, env.Logger)
	return NewGetUsageUseCase(guard, nil, env.Logger)
}

func TestGetUsage_EmptyUserOnFallbackPlan(t *testing.T) {
	env := testutil.NewEnv(t)

	out, err := newGetUsage(env).Execute(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Equal(t, "tek_egitim", out.Plan.ID)
	assert.Equal(t, int64(5), out.Plan.Limits[plan.LimitDesigns])
	assert.Zero(t, out.Usage.Trainings)
	assert.Zero(t, out.Usage.StorageMB)
}

func TestGetUsage_CountsAssets(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SeedPlan(t, "tek_egitim", plan.Limits{plan.LimitAssets: 10})
	uid := "u1"
	a, err := asset.NewAsset("a1", &uid, "logo.png", "image/png", "data:image/png;base64,AAAA")
	require.NoError(t, err)
	require.NoError(t, env.Assets.Create(context.Background(), a))

	out, err := newGetUsage(env).Execute(context.Background(), uid)

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Usage.Assets)
	assert.Equal(t, map[string]int64{plan.LimitAssets: 10}, out.Plan.Limits)
}

func TestGetUsage_UnconfiguredPlan(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Subscribe(t, "u1", "missing_plan")

	_, err := newGetUsage(env).Execute(context.Background(), "u1")

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}
