package models

import (
	"time"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/constants"
)

type SubscriptionModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"not null;size:64;index:idx_subscriptions_user_status"`
	PackageID string `gorm:"not null;size:50;index"`
	Status    string `gorm:"not null;size:20;index:idx_subscriptions_user_status"`
	StartsAt  time.Time
	ExpiresAt *time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
