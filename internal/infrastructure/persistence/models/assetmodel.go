package models

import (
	"time"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/constants"
)

type AssetModel struct {
	ID        string  `gorm:"primaryKey;size:64"`
	UserID    *string `gorm:"size:64;index"`
	Name      string  `gorm:"not null;size:255"`
	MimeType  string  `gorm:"size:100"`
	Content   string  `gorm:"not null;size:16777216"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AssetModel) TableName() string {
	return constants.TableAssets
}
