package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/permission"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/handlers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/middleware"
)

// SettingRouteConfig holds the configuration for setting routes
type SettingRouteConfig struct {
	Handler              *handlers.SettingHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSettingRoutes configures system setting routes. Reading is public.
func SetupSettingRoutes(engine *gin.Engine, config *SettingRouteConfig) {
	settings := engine.Group("/settings")
	{
		settings.GET("", config.Handler.GetSettings)
		settings.PUT("",
			config.AuthMiddleware.RequireAuth(),
			config.PermissionMiddleware.RequirePermission(permission.ResourceSetting, permission.ActionUpdate),
			config.Handler.UpdateSettings,
		)
	}
}
