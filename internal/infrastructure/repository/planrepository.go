package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/mappers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/db"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) plan.Repository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, p *plan.Plan) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan", "error", err, "plan_id", p.ID())
		return fmt.Errorf("failed to create plan: %w", err)
	}

	r.logger.Infow("plan created", "plan_id", p.ID())
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id string) (*plan.Plan, error) {
	var model models.PlanModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan", "error", err, "plan_id", id)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) List(ctx context.Context, onlyActive bool) ([]*plan.Plan, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}

	var planModels []*models.PlanModel
	if err := query.Order("created_at ASC, id ASC").Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return r.mapper.ToEntities(planModels)
}

// Update writes every column so that fields cleared by a patch (nil price,
// inactive flag, empty limits) are persisted too.
func (r *PlanRepositoryImpl) Update(ctx context.Context, p *plan.Plan) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"name":         model.Name,
			"price":        model.Price,
			"yearly_price": model.YearlyPrice,
			"billing_type": model.BillingType,
			"description":  model.Description,
			"limits":       model.Limits,
			"features":     model.Features,
			"is_active":    model.IsActive,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "error", result.Error, "plan_id", p.ID())
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	// RowsAffected is not checked: MySQL reports 0 when nothing changed

	r.logger.Infow("plan updated", "plan_id", p.ID())
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.PlanModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete plan", "error", result.Error, "plan_id", id)
		return fmt.Errorf("failed to delete plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return plan.ErrPlanNotFound
	}

	r.logger.Infow("plan deleted", "plan_id", id)
	return nil
}

func (r *PlanRepositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.PlanModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check plan existence: %w", err)
	}
	return count > 0, nil
}
