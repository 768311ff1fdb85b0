package models

import (
	"time"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/constants"
)

type SystemSettingModel struct {
	ID          uint   `gorm:"primaryKey"`
	SettingKey  string `gorm:"not null;size:100;uniqueIndex"`
	Value       string `gorm:"type:text"`
	Description string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SystemSettingModel) TableName() string {
	return constants.TableSystemSettings
}
