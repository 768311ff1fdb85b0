package usecases

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/testutil"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/usage/services"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/user"
	apperrors "github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
)

type nopRecorder struct{}

func (nopRecorder) LimitRejected(string, string) {}

var (
	alice = common.Requester{UserID: "alice", Role: "user"}
	bob   = common.Requester{UserID: "bob", Role: "user"}
	admin = common.Requester{UserID: "root", Role: "admin"}
)

func newCreate(t *testing.T, limits plan.Limits) (*testutil.Env, *CreateDesignUseCase) {
	t.Helper()
	env := testutil.NewEnv(t)
	env.SeedPlan(t, "tek_egitim", limits)
	env.SeedUser(t, "alice", user.RoleUser)
	env.SeedUser(t, "bob", user.RoleUser)
	env.SeedUser(t, "root", user.RoleAdmin)
	resolver := services.NewPlanResolver(env.Subscriptions, env.Plans, "tek_egitim", env.Logger)
	guard := services.NewLimitGuard(env.TxManager, env.Users, resolver, env.Usage, nopRecorder{}, env.Logger)
	return env, NewCreateDesignUseCase(env.Designs, guard, env.Logger)
}

func designCmd(name string, requester common.Requester) CreateDesignCommand {
	return CreateDesignCommand{
		Name:       name,
		DesignJSON: json.RawMessage(`{"objects":[]}`),
		Requester:  requester,
	}
}

func TestCreateDesign_LimitAndTemplates(t *testing.T) {
	env, uc := newCreate(t, plan.Limits{plan.LimitDesigns: 1})
	ctx := context.Background()

	out, err := uc.Execute(ctx, designCmd("First", alice))
	require.NoError(t, err)
	assert.Equal(t, "alice", *out.UserID)
	assert.Equal(t, "landscape", out.Orientation)

	_, err = uc.Execute(ctx, designCmd("Second", alice))
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "designs", appErr.LimitReached)

	// templates are not counted
	tpl := designCmd("Shared", admin)
	tpl.IsTemplate = true
	tpl.UserID = "alice"
	_, err = uc.Execute(ctx, tpl)
	require.NoError(t, err)

	u, err := env.Usage.Aggregate(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.Designs)
}

func TestCreateDesign_TemplateRequiresAdmin(t *testing.T) {
	_, uc := newCreate(t, plan.Limits{})
	cmd := designCmd("Shared", alice)
	cmd.IsTemplate = true

	_, err := uc.Execute(context.Background(), cmd)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}

func TestCreateDesign_ForOtherUserIsForbidden(t *testing.T) {
	_, uc := newCreate(t, plan.Limits{})
	cmd := designCmd("Mine", bob)
	cmd.UserID = "alice"

	_, err := uc.Execute(context.Background(), cmd)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
}

func TestCreateDesign_Validation(t *testing.T) {
	_, uc := newCreate(t, plan.Limits{})

	_, err := uc.Execute(context.Background(), designCmd("   ", alice))
	assert.True(t, apperrors.IsValidationError(err))

	bad := designCmd("x", alice)
	bad.DesignJSON = json.RawMessage(`not json`)
	_, err = uc.Execute(context.Background(), bad)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestDesignQueriesAndMutations(t *testing.T) {
	env, create := newCreate(t, plan.Limits{})
	ctx := context.Background()

	own, err := create.Execute(ctx, designCmd("Alice design", alice))
	require.NoError(t, err)
	tplCmd := designCmd("Template", admin)
	tplCmd.IsTemplate = true
	tpl, err := create.Execute(ctx, tplCmd)
	require.NoError(t, err)

	list, err := NewListDesignsUseCase(env.Designs, env.Logger).Execute(ctx, "", alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, own.ID, list[0].ID)
	assert.True(t, list[1].IsTemplate)

	get := NewGetDesignUseCase(env.Designs, env.Logger)
	_, err = get.Execute(ctx, own.ID, bob)
	assert.True(t, apperrors.IsNotFoundError(err))
	_, err = get.Execute(ctx, tpl.ID, bob)
	assert.NoError(t, err)

	update := NewUpdateDesignUseCase(env.Designs, env.Logger)
	name := "Renamed"
	portrait := "portrait"
	out, err := update.Execute(ctx, UpdateDesignCommand{ID: own.ID, Name: &name, Orientation: &portrait, Requester: alice})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", out.Name)
	assert.Equal(t, "portrait", out.Orientation)
	assert.JSONEq(t, `{"objects":[]}`, string(out.DesignJSON), "content untouched")

	_, err = update.Execute(ctx, UpdateDesignCommand{ID: tpl.ID, Name: &name, Requester: alice})
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)

	del := NewDeleteDesignUseCase(env.Designs, env.Logger)
	assert.True(t, apperrors.IsNotFoundError(del.Execute(ctx, own.ID, bob)))
	require.NoError(t, del.Execute(ctx, own.ID, alice))
	require.NoError(t, del.Execute(ctx, tpl.ID, admin))
	assert.True(t, apperrors.IsNotFoundError(del.Execute(ctx, own.ID, alice)))
}

func TestDesignJSON_NullAndScalarsRejected(t *testing.T) {
	env, create := newCreate(t, plan.Limits{})
	ctx := context.Background()

	for _, raw := range []string{`null`, `42`, `"text"`} {
		cmd := designCmd("x", alice)
		cmd.DesignJSON = json.RawMessage(raw)
		_, err := create.Execute(ctx, cmd)
		assert.True(t, apperrors.IsValidationError(err), "create with design_json=%s", raw)
	}

	own, err := create.Execute(ctx, designCmd("Alice design", alice))
	require.NoError(t, err)
	update := NewUpdateDesignUseCase(env.Designs, env.Logger)

	out, err := update.Execute(ctx, UpdateDesignCommand{ID: own.ID, DesignJSON: json.RawMessage(`null`), Requester: alice})
	require.NoError(t, err)
	assert.JSONEq(t, `{"objects":[]}`, string(out.DesignJSON), "null leaves content untouched")

	_, err = update.Execute(ctx, UpdateDesignCommand{ID: own.ID, DesignJSON: json.RawMessage(`7`), Requester: alice})
	assert.True(t, apperrors.IsValidationError(err))
}
