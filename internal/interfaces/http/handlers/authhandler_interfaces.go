package handlers

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	subdto "github.com/seyidturgut/certifix.ai-sub001/internal/application/subscription/dto"
	userdto "github.com/seyidturgut/certifix.ai-sub001/internal/application/user/dto"
	useruc "github.com/seyidturgut/certifix.ai-sub001/internal/application/user/usecases"
)

// Use case interfaces for AuthHandler and UserHandler

type registerUseCase interface {
	Execute(ctx context.Context, cmd useruc.RegisterCommand) (*userdto.UserDTO, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd useruc.LoginCommand) (*userdto.LoginResultDTO, error)
}

type getUserUseCase interface {
	Execute(ctx context.Context, id string, requester common.Requester) (*userdto.UserDTO, error)
}

type listUsersUseCase interface {
	Execute(ctx context.Context, query useruc.ListUsersQuery) (*userdto.ListUsersResult, error)
}

type updateUserUseCase interface {
	Execute(ctx context.Context, cmd useruc.UpdateUserCommand) (*userdto.UserDTO, error)
}

type deleteUserUseCase interface {
	Execute(ctx context.Context, id string, requester common.Requester) error
}

type listUserSubscriptionsUseCase interface {
	Execute(ctx context.Context, userID string, requester common.Requester) ([]*subdto.SubscriptionDTO, error)
}
