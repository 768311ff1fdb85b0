package http

import (
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances.
type allHandlers struct {
	healthHandler       *handlers.HealthHandler
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	planHandler         *handlers.PlanHandler
	subscriptionHandler *handlers.SubscriptionHandler
	usageHandler        *handlers.UsageHandler
	certificateHandler  *handlers.CertificateHandler
	verificationHandler *handlers.VerificationHandler
	designHandler       *handlers.DesignHandler
	assetHandler        *handlers.AssetHandler
	settingHandler      *handlers.SettingHandler
}

func (c *Container) newHandlers() *allHandlers {
	u := c.ucs
	log := c.log

	var pinger handlers.Pinger
	if sqlDB, err := c.db.DB(); err == nil {
		pinger = sqlDB
	}

	return &allHandlers{
		healthHandler: handlers.NewHealthHandler(pinger, log),
		authHandler:   handlers.NewAuthHandler(u.registerUC, u.loginUC, log),
		userHandler: handlers.NewUserHandler(
			u.getUserUC, u.listUsersUC, u.updateUserUC, u.deleteUserUC, u.listUserSubscriptionsUC, log),
		planHandler: handlers.NewPlanHandler(
			u.createPlanUC, u.updatePlanUC, u.getPlanUC, u.listPlansUC, u.deletePlanUC, log),
		subscriptionHandler: handlers.NewSubscriptionHandler(u.assignSubscriptionUC, u.changeStatusUC, log),
		usageHandler:        handlers.NewUsageHandler(u.getUsageUC, log),
		certificateHandler: handlers.NewCertificateHandler(
			u.issueCertificateUC, u.bulkIssueCertificatesUC, u.listCertificatesUC,
			u.getCertificateUC, u.revokeCertificateUC, u.deleteCertificateUC, log),
		verificationHandler: handlers.NewVerificationHandler(u.verifyCertificateUC, u.renderVerificationUC, log),
		designHandler: handlers.NewDesignHandler(
			u.createDesignUC, u.listDesignsUC, u.getDesignUC, u.updateDesignUC, u.deleteDesignUC, log),
		assetHandler: handlers.NewAssetHandler(
			u.createAssetUC, u.listAssetsUC, u.getAssetUC, u.deleteAssetUC, log),
		settingHandler: handlers.NewSettingHandler(u.getSettingsUC, u.updateSettingsUC, log),
	}
}
