package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/setting"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/mappers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/db"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type SystemSettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSystemSettingRepository(db *gorm.DB, logger logger.Interface) setting.Repository {
	return &SystemSettingRepository{db: db, logger: logger}
}

func (r *SystemSettingRepository) GetAll(ctx context.Context) ([]*setting.SystemSetting, error) {
	var modelList []*models.SystemSettingModel
	if err := db.GetTxFromContext(ctx, r.db).Order("setting_key ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get all settings", "error", err)
		return nil, fmt.Errorf("failed to get all settings: %w", err)
	}
	return mappers.SystemSettingsToEntities(modelList), nil
}

func (r *SystemSettingRepository) GetByKey(ctx context.Context, key string) (*setting.SystemSetting, error) {
	var model models.SystemSettingModel
	if err := db.GetTxFromContext(ctx, r.db).Where("setting_key = ?", key).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get setting by key: %w", err)
	}
	return mappers.SystemSettingToEntity(&model), nil
}

func (r *SystemSettingRepository) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	model := &models.SystemSettingModel{
		SettingKey:  s.Key(),
		Value:       s.Value(),
		Description: s.Description(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}

	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert setting", "key", s.Key(), "error", err)
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}
