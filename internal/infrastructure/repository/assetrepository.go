package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/asset"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/mappers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/db"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type AssetRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAssetRepository(db *gorm.DB, logger logger.Interface) asset.Repository {
	return &AssetRepositoryImpl{db: db, logger: logger}
}

func (r *AssetRepositoryImpl) Create(ctx context.Context, a *asset.Asset) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.AssetToModel(a)).Error; err != nil {
		r.logger.Errorw("failed to create asset", "error", err, "asset_id", a.ID())
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

func (r *AssetRepositoryImpl) GetByID(ctx context.Context, id string) (*asset.Asset, error) {
	var model models.AssetModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return mappers.AssetToEntity(&model), nil
}

func (r *AssetRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*asset.Asset, error) {
	var assetModels []*models.AssetModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		Order("created_at DESC, id ASC").
		Find(&assetModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return mappers.AssetsToEntities(assetModels), nil
}

func (r *AssetRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.AssetModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return asset.ErrAssetNotFound
	}
	return nil
}
