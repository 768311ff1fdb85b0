package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/design"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/mappers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/db"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type DesignRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewDesignRepository(db *gorm.DB, logger logger.Interface) design.Repository {
	return &DesignRepositoryImpl{db: db, logger: logger}
}

func (r *DesignRepositoryImpl) Create(ctx context.Context, d *design.Design) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.DesignToModel(d)).Error; err != nil {
		r.logger.Errorw("failed to create design", "error", err, "design_id", d.ID())
		return fmt.Errorf("failed to create design: %w", err)
	}
	return nil
}

func (r *DesignRepositoryImpl) GetByID(ctx context.Context, id string) (*design.Design, error) {
	var model models.DesignModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get design: %w", err)
	}
	return mappers.DesignToEntity(&model), nil
}

func (r *DesignRepositoryImpl) ListForUser(ctx context.Context, userID string) ([]*design.Design, error) {
	var designModels []*models.DesignModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? OR is_template = ?", userID, true).
		Order("CASE WHEN is_template THEN 1 ELSE 0 END, created_at DESC, id ASC").
		Find(&designModels).Error
	if err != nil {
		r.logger.Errorw("failed to list designs", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list designs: %w", err)
	}
	return mappers.DesignsToEntities(designModels), nil
}

func (r *DesignRepositoryImpl) Update(ctx context.Context, d *design.Design) error {
	model := mappers.DesignToModel(d)
	err := db.GetTxFromContext(ctx, r.db).Model(&models.DesignModel{}).
		Where("id = ?", d.ID()).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"design_json":   model.DesignJSON,
			"orientation":   model.Orientation,
			"preview_image": model.PreviewImage,
			"updated_at":    model.UpdatedAt,
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update design", "error", err, "design_id", d.ID())
		return fmt.Errorf("failed to update design: %w", err)
	}
	return nil
}

func (r *DesignRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.DesignModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete design: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return design.ErrDesignNotFound
	}
	return nil
}
