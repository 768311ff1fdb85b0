package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/usage"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/db"
)

// UsageRepository runs the per-user aggregation queries. Inside a
// transaction it sees the rows inserted earlier in that transaction.
type UsageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

func (r *UsageRepository) Aggregate(ctx context.Context, userID string) (usage.Usage, error) {
	var u usage.Usage
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.CertificateModel{}).Scopes(db.OwnedBy(userID)).
		Distinct("group_name").Count(&u.Trainings).Error; err != nil {
		return usage.Usage{}, fmt.Errorf("failed to count trainings: %w", err)
	}

	if err := tx.Model(&models.CertificateModel{}).Scopes(db.OwnedBy(userID)).
		Count(&u.Certificates).Error; err != nil {
		return usage.Usage{}, fmt.Errorf("failed to count certificates: %w", err)
	}

	if err := tx.Model(&models.DesignModel{}).Scopes(db.OwnedBy(userID)).
		Where("is_template = ? OR is_template IS NULL", false).
		Count(&u.Designs).Error; err != nil {
		return usage.Usage{}, fmt.Errorf("failed to count designs: %w", err)
	}

	if err := tx.Model(&models.AssetModel{}).Scopes(db.OwnedBy(userID)).
		Count(&u.Assets).Error; err != nil {
		return usage.Usage{}, fmt.Errorf("failed to count assets: %w", err)
	}

	var storageBytes int64
	if err := tx.Model(&models.AssetModel{}).Scopes(db.OwnedBy(userID)).
		Select(fmt.Sprintf("COALESCE(SUM(%s), 0)", byteLengthExpr(tx, "content"))).
		Scan(&storageBytes).Error; err != nil {
		return usage.Usage{}, fmt.Errorf("failed to sum asset storage: %w", err)
	}
	u.StorageMB = usage.StorageMBFromBytes(storageBytes)

	return u, nil
}

// byteLengthExpr measures bytes, not characters: SQLite's LENGTH on text
// counts characters, so the value is cast to a blob first.
func byteLengthExpr(tx *gorm.DB, column string) string {
	if tx.Dialector.Name() == "sqlite" {
		return fmt.Sprintf("LENGTH(CAST(%s AS BLOB))", column)
	}
	return fmt.Sprintf("OCTET_LENGTH(%s)", column)
}
