package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/testutil"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/user"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/auth"
	apperrors "github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
)

var admin = common.Requester{UserID: "root", Role: "admin"}

func newHasher() *auth.BcryptPasswordHasher {
	return auth.NewBcryptPasswordHasher(bcrypt.MinCost)
}

func register(t *testing.T, env *testutil.Env, email string) string {
	t.Helper()
	out, err := NewRegisterUseCase(env.Users, newHasher(), env.Logger).Execute(context.Background(), RegisterCommand{
		Name:     "Ada Lovelace",
		Email:    email,
		Password: "correct horse",
	})
	require.NoError(t, err)
	return out.ID
}

func errType(t *testing.T, err error) apperrors.ErrorType {
	t.Helper()
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	return appErr.Type
}

func TestRegister(t *testing.T) {
	env := testutil.NewEnv(t)
	uc := NewRegisterUseCase(env.Users, newHasher(), env.Logger)
	ctx := context.Background()

	out, err := uc.Execute(ctx, RegisterCommand{Name: " Ada ", Email: "Ada@Example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", out.Name)
	assert.Equal(t, "ada@example.com", out.Email)
	assert.Equal(t, "user", out.Role)

	stored, err := env.Users.GetByID(ctx, out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", stored.PasswordHash())

	_, err = uc.Execute(ctx, RegisterCommand{Name: "Other", Email: "ada@example.com", Password: "another pass"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, errType(t, err))
	assert.Equal(t, "email already registered", apperrors.GetAppError(err).Message)

	_, err = uc.Execute(ctx, RegisterCommand{Name: "Short", Email: "s@example.com", Password: "123"})
	assert.Equal(t, apperrors.ErrorTypeValidation, errType(t, err))
}

func TestLogin(t *testing.T) {
	env := testutil.NewEnv(t)
	id := register(t, env, "ada@example.com")
	jwtService := auth.NewJWTService("test-secret", 15)
	uc := NewLoginUseCase(env.Users, newHasher(), jwtService, env.Logger)
	ctx := context.Background()

	out, err := uc.Execute(ctx, LoginCommand{Email: " ADA@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, int64(900), out.ExpiresIn)

	claims, err := jwtService.Verify(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "user", claims.Role)

	_, err = uc.Execute(ctx, LoginCommand{Email: "ada@example.com", Password: "wrong"})
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, errType(t, err))

	_, err = uc.Execute(ctx, LoginCommand{Email: "nobody@example.com", Password: "correct horse"})
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, errType(t, err))
}

func TestUpdateUser(t *testing.T) {
	env := testutil.NewEnv(t)
	id := register(t, env, "ada@example.com")
	register(t, env, "taken@example.com")
	self := common.Requester{UserID: id, Role: "user"}
	uc := NewUpdateUserUseCase(env.Users, newHasher(), env.Logger)
	ctx := context.Background()

	org := "Analytical Engines"
	out, err := uc.Execute(ctx, UpdateUserCommand{ID: id, Organization: &org, Requester: self})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", out.Name)
	require.NotNil(t, out.Organization)
	assert.Equal(t, org, *out.Organization)

	role := "admin"
	_, err = uc.Execute(ctx, UpdateUserCommand{ID: id, Role: &role, Requester: self})
	assert.Equal(t, apperrors.ErrorTypeForbidden, errType(t, err))

	taken := "taken@example.com"
	_, err = uc.Execute(ctx, UpdateUserCommand{ID: id, Email: &taken, Requester: self})
	assert.Equal(t, apperrors.ErrorTypeValidation, errType(t, err))

	other := common.Requester{UserID: "someone-else", Role: "user"}
	_, err = uc.Execute(ctx, UpdateUserCommand{ID: id, Organization: &org, Requester: other})
	assert.Equal(t, apperrors.ErrorTypeForbidden, errType(t, err))

	out, err = uc.Execute(ctx, UpdateUserCommand{ID: id, Role: &role, Requester: admin})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Role)

	password := "new password"
	_, err = uc.Execute(ctx, UpdateUserCommand{ID: id, Password: &password, Requester: self})
	require.NoError(t, err)
	_, err = NewLoginUseCase(env.Users, newHasher(), auth.NewJWTService("s", 5), env.Logger).
		Execute(ctx, LoginCommand{Email: "ada@example.com", Password: password})
	assert.NoError(t, err)
}

func TestUserQueriesAndDelete(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SeedUser(t, "u1", user.RoleUser)
	env.SeedUser(t, "u2", user.RoleUser)
	env.SeedUser(t, "root", user.RoleAdmin)
	ctx := context.Background()
	u1 := common.Requester{UserID: "u1", Role: "user"}

	get := NewGetUserUseCase(env.Users, env.Logger)
	out, err := get.Execute(ctx, "u1", u1)
	require.NoError(t, err)
	assert.Equal(t, "u1@example.com", out.Email)
	_, err = get.Execute(ctx, "u2", u1)
	assert.Equal(t, apperrors.ErrorTypeForbidden, errType(t, err))
	_, err = get.Execute(ctx, "missing", admin)
	assert.True(t, apperrors.IsNotFoundError(err))

	list, err := NewListUsersUseCase(env.Users, env.Logger).Execute(ctx, ListUsersQuery{Role: "user"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	assert.Len(t, list.Users, 2)

	del := NewDeleteUserUseCase(env.Users, env.Logger)
	assert.Equal(t, apperrors.ErrorTypeForbidden, errType(t, del.Execute(ctx, "u2", u1)))
	assert.Equal(t, apperrors.ErrorTypeValidation, errType(t, del.Execute(ctx, "root", admin)))
	require.NoError(t, del.Execute(ctx, "u2", admin))
	assert.True(t, apperrors.IsNotFoundError(del.Execute(ctx, "u2", admin)))
}
