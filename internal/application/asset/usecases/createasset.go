package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/asset/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/usage/services"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/asset"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/usage"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/utils"
)

type CreateAssetCommand struct {
	ID        string           `json:"id" validate:"omitempty,max=64"`
	UserID    *string          `json:"user_id" validate:"omitempty,max=64"`
	Name      string           `json:"name" validate:"required,max=255"`
	MimeType  string           `json:"mime_type" validate:"max=100"`
	Content   string           `json:"content" validate:"required"`
	Requester common.Requester `json:"-"`
}

type CreateAssetUseCase struct {
	assetRepo      asset.Repository
	guard          *services.LimitGuard
	allowAnonymous bool
	logger         logger.Interface
}

func NewCreateAssetUseCase(
	assetRepo asset.Repository,
	guard *services.LimitGuard,
	allowAnonymous bool,
	logger logger.Interface,
) *CreateAssetUseCase {
	return &CreateAssetUseCase{
		assetRepo:      assetRepo,
		guard:          guard,
		allowAnonymous: allowAnonymous,
		logger:         logger,
	}
}

// Execute checks the asset count and storage limits of the owner. An asset
// without user_id belongs to nobody and is not checked at all; that path
// exists for legacy clients and can be switched off.
func (uc *CreateAssetUseCase) Execute(ctx context.Context, cmd CreateAssetCommand) (*dto.AssetDTO, error) {
	cmd.Name = utils.NormalizeText(cmd.Name)
	cmd.ID = strings.TrimSpace(cmd.ID)
	cmd.UserID = utils.NormalizeOptional(cmd.UserID)
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	id := cmd.ID
	if id == "" {
		id = uuid.NewString()
	}

	a, err := asset.NewAsset(id, cmd.UserID, cmd.Name, cmd.MimeType, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if a.IsAnonymous() {
		if !uc.allowAnonymous {
			return nil, errors.NewValidationError(asset.ErrAnonymousNotAllowed.Error())
		}
		uc.logger.Warnw("anonymous asset upload bypasses plan limits",
			"asset_id", id,
			"size_bytes", a.SizeBytes(),
			"requested_by", cmd.Requester.UserID,
		)
		if err := uc.assetRepo.Create(ctx, a); err != nil {
			return nil, uc.persistError(err, id)
		}
		return dto.ToAssetDTO(a, false), nil
	}

	userID := *cmd.UserID
	if err := cmd.Requester.RequireAccess(userID); err != nil {
		return nil, err
	}

	err = uc.guard.Run(ctx, userID, func(txCtx context.Context, snap *services.Snapshot) error {
		if err := usage.CheckAsset(snap.Plan.Limits(), snap.Usage, a.SizeBytes()); err != nil {
			return err
		}
		if err := uc.assetRepo.Create(txCtx, a); err != nil {
			return uc.persistError(err, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("asset created", "asset_id", id, "user_id", userID, "size_bytes", a.SizeBytes())
	return dto.ToAssetDTO(a, false), nil
}

func (uc *CreateAssetUseCase) persistError(err error, id string) error {
	if errors.IsDuplicateError(err) {
		return errors.NewConflictError("asset id already exists", id)
	}
	uc.logger.Errorw("failed to create asset", "error", err, "asset_id", id)
	return errors.NewInternalError("failed to create asset")
}
