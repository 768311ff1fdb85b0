package http

import (
	assetUsecases "github.com/seyidturgut/certifix.ai-sub001/internal/application/asset/usecases"
	certificateUsecases "github.com/seyidturgut/certifix.ai-sub001/internal/application/certificate/usecases"
	designUsecases "github.com/seyidturgut/certifix.ai-sub001/internal/application/design/usecases"
	planUsecases "github.com/seyidturgut/certifix.ai-sub001/internal/application/plan/usecases"
	settingUsecases "github.com/seyidturgut/certifix.ai-sub001/internal/application/setting/usecases"
	subscriptionUsecases "github.com/seyidturgut/certifix.ai-sub001/internal/application/subscription/usecases"
	usageUsecases "github.com/seyidturgut/certifix.ai-sub001/internal/application/usage/usecases"
	userUsecases "github.com/seyidturgut/certifix.ai-sub001/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	registerUC              *userUsecases.RegisterUseCase
	loginUC                 *userUsecases.LoginUseCase
	getUserUC               *userUsecases.GetUserUseCase
	listUsersUC             *userUsecases.ListUsersUseCase
	updateUserUC            *userUsecases.UpdateUserUseCase
	deleteUserUC            *userUsecases.DeleteUserUseCase
	listUserSubscriptionsUC *subscriptionUsecases.ListUserSubscriptionsUseCase

	// Plan
	createPlanUC *planUsecases.CreatePlanUseCase
	updatePlanUC *planUsecases.UpdatePlanUseCase
	getPlanUC    *planUsecases.GetPlanUseCase
	listPlansUC  *planUsecases.ListPlansUseCase
	deletePlanUC *planUsecases.DeletePlanUseCase

	// Subscription
	assignSubscriptionUC  *subscriptionUsecases.AssignSubscriptionUseCase
	changeStatusUC        *subscriptionUsecases.ChangeStatusUseCase
	expireSubscriptionsUC *subscriptionUsecases.ExpireSubscriptionsUseCase

	// Usage
	getUsageUC *usageUsecases.GetUsageUseCase

	// Certificate
	issueCertificateUC      *certificateUsecases.IssueCertificateUseCase
	bulkIssueCertificatesUC *certificateUsecases.BulkIssueCertificatesUseCase
	listCertificatesUC      *certificateUsecases.ListCertificatesUseCase
	getCertificateUC        *certificateUsecases.GetCertificateUseCase
	revokeCertificateUC     *certificateUsecases.RevokeCertificateUseCase
	deleteCertificateUC     *certificateUsecases.DeleteCertificateUseCase
	verifyCertificateUC     *certificateUsecases.VerifyCertificateUseCase
	renderVerificationUC    *certificateUsecases.RenderVerificationUseCase

	// Design
	createDesignUC *designUsecases.CreateDesignUseCase
	listDesignsUC  *designUsecases.ListDesignsUseCase
	getDesignUC    *designUsecases.GetDesignUseCase
	updateDesignUC *designUsecases.UpdateDesignUseCase
	deleteDesignUC *designUsecases.DeleteDesignUseCase

	// Asset
	createAssetUC *assetUsecases.CreateAssetUseCase
	listAssetsUC  *assetUsecases.ListAssetsUseCase
	getAssetUC    *assetUsecases.GetAssetUseCase
	deleteAssetUC *assetUsecases.DeleteAssetUseCase

	// Setting
	getSettingsUC    *settingUsecases.GetSettingsUseCase
	updateSettingsUC *settingUsecases.UpdateSettingsUseCase
}

// newUseCases builds every use case on top of the repositories and the
// shared services created by initInfrastructure.
func (c *Container) newUseCases() *allUseCases {
	r := c.repos
	log := c.log

	return &allUseCases{
		registerUC:              userUsecases.NewRegisterUseCase(r.userRepo, c.hasher, log),
		loginUC:                 userUsecases.NewLoginUseCase(r.userRepo, c.hasher, c.jwtSvc, log),
		getUserUC:               userUsecases.NewGetUserUseCase(r.userRepo, log),
		listUsersUC:             userUsecases.NewListUsersUseCase(r.userRepo, log),
		updateUserUC:            userUsecases.NewUpdateUserUseCase(r.userRepo, c.hasher, log),
		deleteUserUC:            userUsecases.NewDeleteUserUseCase(r.userRepo, log),
		listUserSubscriptionsUC: subscriptionUsecases.NewListUserSubscriptionsUseCase(r.subscriptionRepo, log),

		createPlanUC: planUsecases.NewCreatePlanUseCase(r.planRepo, c.markdown, log),
		updatePlanUC: planUsecases.NewUpdatePlanUseCase(r.planRepo, c.markdown, log),
		getPlanUC:    planUsecases.NewGetPlanUseCase(r.planRepo, c.markdown, log),
		listPlansUC:  planUsecases.NewListPlansUseCase(r.planRepo, c.markdown, log),
		deletePlanUC: planUsecases.NewDeletePlanUseCase(r.planRepo, r.subscriptionRepo, log),

		assignSubscriptionUC:  subscriptionUsecases.NewAssignSubscriptionUseCase(r.subscriptionRepo, r.planRepo, log),
		changeStatusUC:        subscriptionUsecases.NewChangeStatusUseCase(r.subscriptionRepo, log),
		expireSubscriptionsUC: subscriptionUsecases.NewExpireSubscriptionsUseCase(r.subscriptionRepo, log),

		getUsageUC: usageUsecases.NewGetUsageUseCase(c.limitGuard, c.markdown, log),

		issueCertificateUC: certificateUsecases.NewIssueCertificateUseCase(
			r.certificateRepo, c.limitGuard, c.shareTokens, c.mailer, c.recorder, &c.cfg.Verify, log),
		bulkIssueCertificatesUC: certificateUsecases.NewBulkIssueCertificatesUseCase(
			r.certificateRepo, c.limitGuard, c.shareTokens, c.mailer, c.recorder, &c.cfg.Verify, log),
		listCertificatesUC:  certificateUsecases.NewListCertificatesUseCase(r.certificateRepo, log),
		getCertificateUC:    certificateUsecases.NewGetCertificateUseCase(r.certificateRepo, log),
		revokeCertificateUC: certificateUsecases.NewRevokeCertificateUseCase(r.certificateRepo, log),
		deleteCertificateUC: certificateUsecases.NewDeleteCertificateUseCase(r.certificateRepo, log),
		verifyCertificateUC: certificateUsecases.NewVerifyCertificateUseCase(r.certificateRepo, log),
		renderVerificationUC: certificateUsecases.NewRenderVerificationUseCase(
			r.certificateRepo, c.pdf, &c.cfg.Verify, c.cfg.Verify.QRSize, log),

		createDesignUC: designUsecases.NewCreateDesignUseCase(r.designRepo, c.limitGuard, log),
		listDesignsUC:  designUsecases.NewListDesignsUseCase(r.designRepo, log),
		getDesignUC:    designUsecases.NewGetDesignUseCase(r.designRepo, log),
		updateDesignUC: designUsecases.NewUpdateDesignUseCase(r.designRepo, log),
		deleteDesignUC: designUsecases.NewDeleteDesignUseCase(r.designRepo, log),

		createAssetUC: assetUsecases.NewCreateAssetUseCase(r.assetRepo, c.limitGuard, c.cfg.Usage.AllowAnonymousAssets, log),
		listAssetsUC:  assetUsecases.NewListAssetsUseCase(r.assetRepo, log),
		getAssetUC:    assetUsecases.NewGetAssetUseCase(r.assetRepo, log),
		deleteAssetUC: assetUsecases.NewDeleteAssetUseCase(r.assetRepo, log),

		getSettingsUC:    settingUsecases.NewGetSettingsUseCase(r.settingRepo, log),
		updateSettingsUC: settingUsecases.NewUpdateSettingsUseCase(r.settingRepo, c.txManager, log),
	}
}
