package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/user/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/user"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

// UpdateUserCommand is sparse: nil fields are left untouched. An empty
// organization clears it.
type UpdateUserCommand struct {
	ID           string           `json:"-"`
	Name         *string          `json:"name" validate:"omitempty,max=255"`
	Email        *string          `json:"email" validate:"omitempty,email,max=255"`
	Password     *string          `json:"password" validate:"omitempty,min=8,max=72"`
	Organization *string          `json:"organization" validate:"omitempty,max=255"`
	Role         *string          `json:"role"`
	Requester    common.Requester `json:"-"`
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	if err := cmd.Requester.RequireAccess(cmd.ID); err != nil {
		return nil, err
	}
	if cmd.Role != nil && !cmd.Requester.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can change roles")
	}
	if cmd.Name != nil {
		name := utils.NormalizeText(*cmd.Name)
		cmd.Name = &name
	}
	if cmd.Email != nil {
		email := user.NormalizeEmail(*cmd.Email)
		cmd.Email = &email
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	u, err := loadUser(ctx, uc.userRepo, uc.logger, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if err := u.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Email != nil && *cmd.Email != u.Email() {
		exists, err := uc.userRepo.ExistsByEmail(ctx, *cmd.Email)
		if err != nil {
			uc.logger.Errorw("failed to check email", "error", err, "user_id", cmd.ID)
			return nil, errors.NewInternalError("failed to update user")
		}
		if exists {
			return nil, errors.NewValidationError(user.ErrEmailExists.Error())
		}
		if err := u.ChangeEmail(*cmd.Email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Organization != nil {
		u.SetOrganization(utils.NormalizeOptional(cmd.Organization))
	}

	if cmd.Password != nil {
		hash, err := uc.hasher.Hash(*cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err, "user_id", cmd.ID)
			return nil, errors.NewInternalError("failed to update user")
		}
		if err := u.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Role != nil {
		if err := u.ChangeRole(user.Role(*cmd.Role)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewValidationError(user.ErrEmailExists.Error())
		}
		return nil, errors.NewInternalError("failed to update user")
	}

	uc.logger.Infow("user updated", "user_id", cmd.ID, "by", cmd.Requester.UserID)
	return dto.ToUserDTO(u), nil
}
