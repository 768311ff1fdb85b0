package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/permission"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/handlers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig holds dependencies for subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler  *handlers.SubscriptionHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSubscriptionRoutes configures admin subscription management. Users
// read their own subscriptions through /users/:id/subscriptions.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	subscriptions := engine.Group("/subscriptions")
	subscriptions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subscriptions.POST("", cfg.PermissionMiddleware.RequirePermission(permission.ResourceSubscription, permission.ActionCreate), cfg.SubscriptionHandler.AssignSubscription)
		subscriptions.PATCH("/:id/status", cfg.PermissionMiddleware.RequirePermission(permission.ResourceSubscription, permission.ActionUpdate), cfg.SubscriptionHandler.UpdateStatus)
	}
}
