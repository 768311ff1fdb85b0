package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/mappers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/db"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

type CertificateRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCertificateRepository(db *gorm.DB, logger logger.Interface) certificate.Repository {
	return &CertificateRepositoryImpl{db: db, logger: logger}
}

func (r *CertificateRepositoryImpl) Create(ctx context.Context, c *certificate.Certificate) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.CertificateToModel(c)).Error; err != nil {
		r.logger.Errorw("failed to create certificate", "error", err, "certificate_id", c.ID(), "user_id", c.UserID())
		return fmt.Errorf("failed to create certificate: %w", err)
	}
	return nil
}

func (r *CertificateRepositoryImpl) GetByID(ctx context.Context, id string) (*certificate.Certificate, error) {
	var model models.CertificateModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get certificate", "error", err, "certificate_id", id)
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}
	return mappers.CertificateToEntity(&model), nil
}

func (r *CertificateRepositoryImpl) List(ctx context.Context, filter certificate.ListFilter) ([]*certificate.Certificate, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CertificateModel{})
	if filter.UserID != "" {
		query = query.Scopes(db.OwnedBy(filter.UserID))
	}
	if filter.GroupName != "" {
		query = query.Where("group_name = ?", filter.GroupName)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count certificates: %w", err)
	}

	var certModels []*models.CertificateModel
	err := query.
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("created_at DESC, id ASC").
		Find(&certModels).Error
	if err != nil {
		r.logger.Errorw("failed to list certificates", "error", err, "user_id", filter.UserID)
		return nil, 0, fmt.Errorf("failed to list certificates: %w", err)
	}

	return mappers.CertificatesToEntities(certModels), total, nil
}

func (r *CertificateRepositoryImpl) Update(ctx context.Context, c *certificate.Certificate) error {
	err := db.GetTxFromContext(ctx, r.db).Model(&models.CertificateModel{}).
		Where("id = ?", c.ID()).
		Updates(map[string]interface{}{
			"status":     string(c.Status()),
			"updated_at": c.UpdatedAt(),
		}).Error
	if err != nil {
		r.logger.Errorw("failed to update certificate", "error", err, "certificate_id", c.ID())
		return fmt.Errorf("failed to update certificate: %w", err)
	}
	return nil
}

func (r *CertificateRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.CertificateModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete certificate", "error", result.Error, "certificate_id", id)
		return fmt.Errorf("failed to delete certificate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return certificate.ErrCertificateNotFound
	}
	return nil
}

func (r *CertificateRepositoryImpl) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.CertificateModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check certificate existence: %w", err)
	}
	return count > 0, nil
}

func (r *CertificateRepositoryImpl) CountInGroup(ctx context.Context, userID, groupName string) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).Model(&models.CertificateModel{}).
		Scopes(db.OwnedBy(userID)).
		Where("group_name = ?", groupName).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count certificates in group: %w", err)
	}
	return count, nil
}
