package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/constants"
)

type DesignModel struct {
	ID           string  `gorm:"primaryKey;size:64"`
	UserID       *string `gorm:"size:64;index"`
	Name         string  `gorm:"not null;size:255"`
	DesignJSON   datatypes.JSON
	Orientation  string  `gorm:"not null;size:20"`
	PreviewImage *string `gorm:"size:16777216"`
	// nullable in legacy rows; NULL counts as not a template
	IsTemplate *bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DesignModel) TableName() string {
	return constants.TableDesigns
}
