package usecases

import (
	"context"
	stderrors "errors"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/user/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/user"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/constants"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, id string, requester common.Requester) (*dto.UserDTO, error) {
	if err := requester.RequireAccess(id); err != nil {
		return nil, err
	}
	u, err := loadUser(ctx, uc.userRepo, uc.logger, id)
	if err != nil {
		return nil, err
	}
	return dto.ToUserDTO(u), nil
}

type ListUsersQuery struct {
	Page     int
	PageSize int
	Search   string
	Role     string
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*dto.ListUsersResult, error) {
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 || query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.DefaultPageSize
	}
	if query.Role != "" && !user.Role(query.Role).IsValid() {
		return nil, errors.NewValidationError(user.ErrInvalidRole.Error())
	}

	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		Page:     query.Page,
		PageSize: query.PageSize,
		Search:   query.Search,
		Role:     query.Role,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}
	return &dto.ListUsersResult{Users: dto.ToUserDTOList(users), Total: total}, nil
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

// Execute removes the user row only. Certificates stay verifiable.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id string, requester common.Requester) error {
	if !requester.IsAdmin() {
		return errors.NewForbiddenError(constants.ErrMsgForbidden)
	}
	if id == requester.UserID {
		return errors.NewValidationError("admins cannot delete their own account")
	}

	if err := uc.userRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return errors.NewNotFoundError(user.ErrUserNotFound.Error())
		}
		uc.logger.Errorw("failed to delete user", "error", err, "user_id", id)
		return errors.NewInternalError("failed to delete user")
	}
	uc.logger.Infow("user deleted", "user_id", id, "by", requester.UserID)
	return nil
}

func loadUser(ctx context.Context, repo user.Repository, log logger.Interface, id string) (*user.User, error) {
	u, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get user", "error", err, "user_id", id)
		return nil, errors.NewInternalError("failed to get user")
	}
	if u == nil {
		return nil, errors.NewNotFoundError(user.ErrUserNotFound.Error())
	}
	return u, nil
}
