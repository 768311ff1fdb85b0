package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

// ColumnPatch names a model field that older databases may lack.
type ColumnPatch struct {
	Model interface{}
	Field string
}

// DefaultColumnPatches lists the columns added after the first public
// schema. Each is checked against the live schema before it is added.
func DefaultColumnPatches() []ColumnPatch {
	return []ColumnPatch{
		{Model: &models.PlanModel{}, Field: "YearlyPrice"},
		{Model: &models.PlanModel{}, Field: "BillingType"},
		{Model: &models.PlanModel{}, Field: "Description"},
		{Model: &models.PlanModel{}, Field: "Features"},
		{Model: &models.DesignModel{}, Field: "IsTemplate"},
		{Model: &models.DesignModel{}, Field: "PreviewImage"},
		{Model: &models.CertificateModel{}, Field: "GroupName"},
		{Model: &models.CertificateModel{}, Field: "Status"},
		{Model: &models.CertificateModel{}, Field: "ShareToken"},
		{Model: &models.UserModel{}, Field: "Organization"},
	}
}

// EnsureColumns adds every missing column and returns the ones it added.
// Running it again is a no-op.
func EnsureColumns(db *gorm.DB, log logger.Interface, patches []ColumnPatch) ([]string, error) {
	migrator := db.Migrator()
	var added []string

	for _, p := range patches {
		if !migrator.HasTable(p.Model) {
			continue
		}
		if migrator.HasColumn(p.Model, p.Field) {
			continue
		}

		if err := migrator.AddColumn(p.Model, p.Field); err != nil {
			return added, fmt.Errorf("add column %T.%s: %w", p.Model, p.Field, err)
		}

		name := fmt.Sprintf("%T.%s", p.Model, p.Field)
		log.Infow("column added", "column", name)
		added = append(added, name)
	}

	return added, nil
}
