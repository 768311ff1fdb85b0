package http

import (
	"github.com/gin-gonic/gin"

	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/middleware"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	e := c.engine
	e.Use(middleware.RequestID())
	e.Use(middleware.CustomLogger(c.log))
	e.Use(middleware.Recovery(c.log))
	e.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	e.Use(middleware.SecurityHeaders())
	if c.cfg.Metrics.Enabled {
		e.Use(middleware.Metrics(c.recorder))
		e.GET(c.metricsPath(), gin.WrapH(c.recorder.Handler()))
	}

	e.GET("/health", c.hdlrs.healthHandler.HealthCheck)

	routes.SetupAuthRoutes(e, &routes.AuthRouteConfig{
		AuthHandler: c.hdlrs.authHandler,
		RateLimiter: c.rateLimiter,
	})

	routes.SetupUserRoutes(e, &routes.UserRouteConfig{
		UserHandler:          c.hdlrs.userHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupPlanRoutes(e, &routes.PlanRouteConfig{
		PlanHandler:          c.hdlrs.planHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupSubscriptionRoutes(e, &routes.SubscriptionRouteConfig{
		SubscriptionHandler:  c.hdlrs.subscriptionHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupUsageRoutes(e, &routes.UsageRouteConfig{
		UsageHandler:   c.hdlrs.usageHandler,
		AuthMiddleware: c.authMiddleware,
	})

	certCfg := &routes.CertificateRouteConfig{
		CertificateHandler:  c.hdlrs.certificateHandler,
		VerificationHandler: c.hdlrs.verificationHandler,
		AuthMiddleware:      c.authMiddleware,
		RateLimiter:         c.rateLimiter,
	}
	routes.SetupCertificateRoutes(e, certCfg)
	routes.SetupVerificationRoutes(e, certCfg)

	routes.SetupDesignRoutes(e, &routes.DesignRouteConfig{
		DesignHandler:  c.hdlrs.designHandler,
		AssetHandler:   c.hdlrs.assetHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupSettingRoutes(e, &routes.SettingRouteConfig{
		Handler:              c.hdlrs.settingHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

func (c *Container) metricsPath() string {
	if c.cfg.Metrics.Path == "" {
		return "/metrics"
	}
	return c.cfg.Metrics.Path
}
