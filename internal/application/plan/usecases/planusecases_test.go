package usecases

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/testutil"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	apperrors "github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/services/markdown"
)

func ptr[T any](v T) *T { return &v }

func TestCreatePlan_Success(t *testing.T) {
	env := testutil.NewEnv(t)
	uc := NewCreatePlanUseCase(env.Plans, markdown.NewMarkdownService(), env.Logger)

	out, err := uc.Execute(context.Background(), CreatePlanCommand{
		ID:          "bootcamp",
		Name:        "Bootcamp",
		Price:       ptr(499.0),
		BillingType: "one-time",
		Description: "**Ten** trainings",
		Limits:      json.RawMessage(`{"trainings":10,"designs":20}`),
		Features:    json.RawMessage(`{"pdf_export":true}`),
	})

	require.NoError(t, err)
	assert.Equal(t, "bootcamp", out.ID)
	assert.Equal(t, int64(10), out.Limits[plan.LimitTrainings])
	assert.True(t, out.Features["pdf_export"])
	assert.Contains(t, out.DescriptionHTML, "<strong>Ten</strong>")
	assert.True(t, out.IsActive)

	stored, err := env.Plans.GetByID(context.Background(), "bootcamp")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 499.0, *stored.Price())
}

func TestCreatePlan_AcceptsStringEncodedLimits(t *testing.T) {
	env := testutil.NewEnv(t)
	uc := NewCreatePlanUseCase(env.Plans, nil, env.Logger)

	out, err := uc.Execute(context.Background(), CreatePlanCommand{
		ID:     "legacy",
		Name:   "Legacy",
		Limits: json.RawMessage(`"{\"designs\":3}"`),
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"designs": 3}, out.Limits)
}

func TestCreatePlan_Validation(t *testing.T) {
	env := testutil.NewEnv(t)
	uc := NewCreatePlanUseCase(env.Plans, nil, env.Logger)

	tests := []struct {
		name string
		cmd  CreatePlanCommand
	}{
		{"missing name", CreatePlanCommand{ID: "x"}},
		{"bad id", CreatePlanCommand{ID: "Has Spaces", Name: "x"}},
		{"negative limit", CreatePlanCommand{ID: "x", Name: "x", Limits: json.RawMessage(`{"designs":-1}`)}},
		{"non numeric limit", CreatePlanCommand{ID: "x", Name: "x", Limits: json.RawMessage(`{"designs":"many"}`)}},
		{"bad billing type", CreatePlanCommand{ID: "x", Name: "x", BillingType: "weekly"}},
		{"negative price", CreatePlanCommand{ID: "x", Name: "x", Price: ptr(-1.0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestCreatePlan_Duplicate(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SeedPlan(t, "bootcamp", plan.Limits{})
	uc := NewCreatePlanUseCase(env.Plans, nil, env.Logger)

	_, err := uc.Execute(context.Background(), CreatePlanCommand{ID: "bootcamp", Name: "Again"})

	assert.True(t, apperrors.IsConflictError(err))
}

func TestGetPlan_NotFound(t *testing.T) {
	env := testutil.NewEnv(t)

	_, err := NewGetPlanUseCase(env.Plans, nil, env.Logger).Execute(context.Background(), "nope")

	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestListPlans_OnlyActive(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SeedPlan(t, "a", plan.Limits{})
	inactive := env.SeedPlan(t, "b", plan.Limits{})
	inactive.Deactivate()
	require.NoError(t, env.Plans.Update(context.Background(), inactive))

	uc := NewListPlansUseCase(env.Plans, nil, env.Logger)

	all, err := uc.Execute(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := uc.Execute(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "a", active[0].ID)
}

func TestUpdatePlan_SparsePatch(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SeedPlan(t, "bootcamp", plan.Limits{plan.LimitTrainings: 5, plan.LimitDesigns: 5})
	uc := NewUpdatePlanUseCase(env.Plans, nil, env.Logger)

	out, err := uc.Execute(context.Background(), UpdatePlanCommand{
		ID:     "bootcamp",
		Limits: json.RawMessage(`{"trainings":8}`),
	})

	require.NoError(t, err)
	assert.Equal(t, "Plan bootcamp", out.Name, "name must be untouched")
	assert.Equal(t, map[string]int64{"trainings": 8}, out.Limits, "limits are replaced, not merged")
	assert.True(t, out.Features["qr_verification"], "features must be untouched")

	out, err = uc.Execute(context.Background(), UpdatePlanCommand{ID: "bootcamp", IsActive: ptr(false), Name: ptr("Renamed")})
	require.NoError(t, err)
	assert.False(t, out.IsActive)
	assert.Equal(t, "Renamed", out.Name)
	assert.Equal(t, int64(8), out.Limits["trainings"])
}

func TestUpdatePlan_NullLimitsAndFeaturesAreNotSupplied(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SeedPlan(t, "tek_egitim", plan.Limits{plan.LimitTrainings: 1, plan.LimitCertificatesPerTraining: 100})
	uc := NewUpdatePlanUseCase(env.Plans, nil, env.Logger)

	out, err := uc.Execute(context.Background(), UpdatePlanCommand{
		ID:       "tek_egitim",
		Name:     ptr("Renamed"),
		Limits:   json.RawMessage(`null`),
		Features: json.RawMessage(` null `),
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", out.Name)
	assert.Equal(t, map[string]int64{"trainings": 1, "certificates_per_training": 100}, out.Limits)
	assert.True(t, out.Features["qr_verification"])

	stored, err := env.Plans.GetByID(context.Background(), "tek_egitim")
	require.NoError(t, err)
	assert.Len(t, stored.Limits(), 2)
}

func TestUpdatePlan_NonObjectLimitsRejected(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SeedPlan(t, "bootcamp", plan.Limits{plan.LimitTrainings: 5})
	uc := NewUpdatePlanUseCase(env.Plans, nil, env.Logger)

	for _, raw := range []string{`[]`, `5`, `true`} {
		_, err := uc.Execute(context.Background(), UpdatePlanCommand{ID: "bootcamp", Limits: json.RawMessage(raw)})
		assert.True(t, apperrors.IsValidationError(err), "limits=%s", raw)

		_, err = uc.Execute(context.Background(), UpdatePlanCommand{ID: "bootcamp", Features: json.RawMessage(raw)})
		assert.True(t, apperrors.IsValidationError(err), "features=%s", raw)
	}
}

func TestUpdatePlan_NotFound(t *testing.T) {
	env := testutil.NewEnv(t)

	_, err := NewUpdatePlanUseCase(env.Plans, nil, env.Logger).Execute(context.Background(), UpdatePlanCommand{ID: "nope"})

	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeletePlan(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SeedPlan(t, "free", plan.Limits{})
	env.SeedPlan(t, "paid", plan.Limits{})
	env.Subscribe(t, "u1", "paid")
	uc := NewDeletePlanUseCase(env.Plans, env.Subscriptions, env.Logger)

	require.NoError(t, uc.Execute(context.Background(), "free"))
	assert.True(t, apperrors.IsNotFoundError(uc.Execute(context.Background(), "free")))
	assert.True(t, apperrors.IsConflictError(uc.Execute(context.Background(), "paid")))
}
