package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/user/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/user"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type LoginCommand struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, hasher: hasher, tokens: tokens, logger: logger}
}

// Execute answers an unknown email and a wrong password the same way.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResultDTO, error) {
	u, err := uc.userRepo.GetByEmail(ctx, user.NormalizeEmail(cmd.Email))
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to log in")
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
	}
	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", u.ID())
		return nil, errors.NewUnauthorizedError(user.ErrInvalidCredentials.Error())
	}

	token, err := uc.tokens.Generate(u.ID(), string(u.Role()))
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to log in")
	}

	return &dto.LoginResultDTO{
		User:        dto.ToUserDTO(u),
		AccessToken: token.Token,
		TokenType:   "Bearer",
		ExpiresIn:   token.ExpiresIn,
		ExpiresAt:   token.ExpiresAt,
	}, nil
}
