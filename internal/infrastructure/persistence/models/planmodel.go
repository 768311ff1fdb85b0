package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/constants"
)

// PlanModel keeps limits and features as serialized JSON. Decoding happens
// only in mappers.PlanMapper.
type PlanModel struct {
	ID          string   `gorm:"primaryKey;size:50"`
	Name        string   `gorm:"not null;size:100"`
	Price       *float64 `gorm:"type:decimal(10,2)"`
	YearlyPrice *float64 `gorm:"type:decimal(10,2)"`
	BillingType string   `gorm:"not null;size:20"`
	Description string   `gorm:"type:text"`
	Limits      datatypes.JSON
	Features    datatypes.JSON
	IsActive    bool `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PlanModel) TableName() string {
	return constants.TablePlans
}
