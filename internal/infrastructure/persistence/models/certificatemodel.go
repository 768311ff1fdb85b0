package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/constants"
)

// CertificateModel. group_name is the training key; the composite index
// serves both the distinct-training count and the per-group count.
type CertificateModel struct {
	ID             string    `gorm:"primaryKey;size:64"`
	UserID         string    `gorm:"not null;size:64;index:idx_certificates_user_group"`
	RecipientName  string    `gorm:"not null;size:255"`
	RecipientEmail *string   `gorm:"size:255"`
	ProgramName    string    `gorm:"not null;size:255"`
	IssueDate      time.Time `gorm:"type:date"`
	DesignJSON     datatypes.JSON
	Orientation    string  `gorm:"not null;size:20"`
	PreviewImage   *string `gorm:"size:16777216"`
	GroupName      string  `gorm:"not null;size:255;index:idx_certificates_user_group"`
	Status         string  `gorm:"not null;size:20"`
	ShareToken     string  `gorm:"not null;size:64;uniqueIndex"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (CertificateModel) TableName() string {
	return constants.TableCertificates
}
