package models

import (
	"time"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/constants"
)

type UserModel struct {
	ID           string  `gorm:"primaryKey;size:64"`
	Name         string  `gorm:"not null;size:255"`
	Email        string  `gorm:"not null;size:255;uniqueIndex"`
	PasswordHash string  `gorm:"not null;size:255"`
	Role         string  `gorm:"not null;size:20"`
	Organization *string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
