package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/subscription"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/mappers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/db"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{db: db, logger: logger}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, s *subscription.Subscription) error {
	model := mappers.SubscriptionToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "error", err, "user_id", s.UserID())
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	s.SetID(model.ID)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return mappers.SubscriptionToEntity(&model), nil
}

func (r *SubscriptionRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*subscription.Subscription, error) {
	var subModels []*models.SubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		Order("id ASC").
		Find(&subModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return mappers.SubscriptionsToEntities(subModels), nil
}

func (r *SubscriptionRepositoryImpl) FindFirstActiveByUser(ctx context.Context, userID string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.OwnedBy(userID)).
		Where("status = ?", subscription.StatusActive).
		Order("id ASC").
		Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active subscription: %w", err)
	}
	return mappers.SubscriptionToEntity(&model), nil
}

func (r *SubscriptionRepositoryImpl) FindExpired(ctx context.Context, now time.Time) ([]*subscription.Subscription, error) {
	var subModels []*models.SubscriptionModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", subscription.StatusActive, now).
		Order("id ASC").
		Find(&subModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expired subscriptions: %w", err)
	}
	return mappers.SubscriptionsToEntities(subModels), nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, s *subscription.Subscription) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{}).
		Where("id = ?", s.ID()).
		Updates(map[string]interface{}{
			"package_id": s.PackageID(),
			"status":     string(s.Status()),
			"starts_at":  s.StartsAt(),
			"expires_at": s.ExpiresAt(),
			"updated_at": s.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "error", result.Error, "subscription_id", s.ID())
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) CountActiveByPackage(ctx context.Context, packageID string) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.SubscriptionModel{}).
		Where("package_id = ? AND status = ?", packageID, subscription.StatusActive).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return count, nil
}
