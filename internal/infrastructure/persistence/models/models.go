// Package models holds the gorm persistence models.
package models

// All lists every model in dependency order for AutoMigrate and tests.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&PlanModel{},
		&SubscriptionModel{},
		&CertificateModel{},
		&DesignModel{},
		&AssetModel{},
		&SystemSettingModel{},
	}
}
