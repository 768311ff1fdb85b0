package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/permission"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/handlers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupUserRoutes configures user management routes. Ownership of /:id
// routes is checked by the use cases.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", cfg.PermissionMiddleware.RequirePermission(permission.ResourceUser, permission.ActionList), cfg.UserHandler.ListUsers)

		users.GET("/:id", cfg.UserHandler.GetUser)
		users.PATCH("/:id", cfg.UserHandler.UpdateUser)
		users.DELETE("/:id", cfg.PermissionMiddleware.RequirePermission(permission.ResourceUser, permission.ActionDelete), cfg.UserHandler.DeleteUser)
		users.GET("/:id/subscriptions", cfg.UserHandler.ListUserSubscriptions)
	}
}
