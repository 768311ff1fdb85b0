package http

import (
	"gorm.io/gorm"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/asset"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/design"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/setting"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/subscription"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/user"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/repository"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	planRepo         plan.Repository
	subscriptionRepo subscription.Repository
	certificateRepo  certificate.Repository
	designRepo       design.Repository
	assetRepo        asset.Repository
	userRepo         user.Repository
	settingRepo      setting.Repository
	usageRepo        *repository.UsageRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		planRepo:         repository.NewPlanRepository(db, log),
		subscriptionRepo: repository.NewSubscriptionRepository(db, log),
		certificateRepo:  repository.NewCertificateRepository(db, log),
		designRepo:       repository.NewDesignRepository(db, log),
		assetRepo:        repository.NewAssetRepository(db, log),
		userRepo:         repository.NewUserRepository(db, log),
		settingRepo:      repository.NewSystemSettingRepository(db, log),
		usageRepo:        repository.NewUsageRepository(db),
	}
}
