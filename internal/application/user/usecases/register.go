package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/user/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/user"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

type RegisterCommand struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Email        string  `json:"email" validate:"required,email,max=255"`
	Password     string  `json:"password" validate:"required,min=8,max=72"`
	Organization *string `json:"organization" validate:"omitempty,max=255"`
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

// Execute creates a regular user. Roles can only be raised later by an
// admin.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	cmd.Name = utils.NormalizeText(cmd.Name)
	cmd.Email = user.NormalizeEmail(cmd.Email)
	cmd.Organization = utils.NormalizeOptional(cmd.Organization)
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}
	if exists {
		return nil, errors.NewValidationError(user.ErrEmailExists.Error())
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}

	u, err := user.NewUser(uuid.NewString(), cmd.Name, cmd.Email, hash, user.RoleUser, cmd.Organization)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		// lost a race with a concurrent registration of the same address
		if errors.IsDuplicateError(err) {
			return nil, errors.NewValidationError(user.ErrEmailExists.Error())
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, errors.NewInternalError("failed to register user")
	}

	uc.logger.Infow("user registered", "user_id", u.ID())
	return dto.ToUserDTO(u), nil
}
