package usecases

import (
	"context"

	"github.com/seyidturgut/certifix.ai-sub001/internal/application/asset/dto"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/common"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/asset"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/errors"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type ListAssetsUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewListAssetsUseCase(assetRepo asset.Repository, logger logger.Interface) *ListAssetsUseCase {
	return &ListAssetsUseCase{assetRepo: assetRepo, logger: logger}
}

func (uc *ListAssetsUseCase) Execute(ctx context.Context, userID string, requester common.Requester) ([]*dto.AssetDTO, error) {
	if userID == "" {
		userID = requester.UserID
	}
	if err := requester.RequireAccess(userID); err != nil {
		return nil, err
	}

	list, err := uc.assetRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list assets", "error", err, "user_id", userID)
		return nil, errors.NewInternalError("failed to list assets")
	}
	return dto.ToAssetDTOList(list), nil
}

type GetAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewGetAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *GetAssetUseCase {
	return &GetAssetUseCase{assetRepo: assetRepo, logger: logger}
}

// Execute returns the asset with its content. Anonymous assets are
// readable by any authenticated caller.
func (uc *GetAssetUseCase) Execute(ctx context.Context, id string, requester common.Requester) (*dto.AssetDTO, error) {
	a, err := loadAsset(ctx, uc.assetRepo, uc.logger, id)
	if err != nil {
		return nil, err
	}
	if !a.IsAnonymous() && !requester.CanAccess(*a.UserID()) {
		return nil, errors.NewNotFoundError(asset.ErrAssetNotFound.Error())
	}
	return dto.ToAssetDTO(a, true), nil
}

type DeleteAssetUseCase struct {
	assetRepo asset.Repository
	logger    logger.Interface
}

func NewDeleteAssetUseCase(assetRepo asset.Repository, logger logger.Interface) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{assetRepo: assetRepo, logger: logger}
}

// Execute lets owners delete their assets; anonymous ones need an admin.
func (uc *DeleteAssetUseCase) Execute(ctx context.Context, id string, requester common.Requester) error {
	a, err := loadAsset(ctx, uc.assetRepo, uc.logger, id)
	if err != nil {
		return err
	}
	switch {
	case requester.IsAdmin():
	case a.IsAnonymous():
		return errors.NewForbiddenError("only admins can delete anonymous assets")
	case !a.OwnedBy(requester.UserID):
		return errors.NewNotFoundError(asset.ErrAssetNotFound.Error())
	}

	if err := uc.assetRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete asset", "error", err, "asset_id", id)
		return errors.NewInternalError("failed to delete asset")
	}
	uc.logger.Infow("asset deleted", "asset_id", id, "by", requester.UserID)
	return nil
}

func loadAsset(ctx context.Context, repo asset.Repository, log logger.Interface, id string) (*asset.Asset, error) {
	a, err := repo.GetByID(ctx, id)
	if err != nil {
		log.Errorw("failed to get asset", "error", err, "asset_id", id)
		return nil, errors.NewInternalError("failed to get asset")
	}
	if a == nil {
		return nil, errors.NewNotFoundError(asset.ErrAssetNotFound.Error())
	}
	return a, nil
}
