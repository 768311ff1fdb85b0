package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/permission"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/handlers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/middleware"
)

// PlanRouteConfig holds dependencies for plan routes.
type PlanRouteConfig struct {
	PlanHandler          *handlers.PlanHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupPlanRoutes configures plan routes.
func SetupPlanRoutes(engine *gin.Engine, cfg *PlanRouteConfig) {
	plans := engine.Group("/plans")
	{
		// Public endpoints (no authentication required)
		plans.GET("", cfg.PlanHandler.ListPlans)
		plans.GET("/:id", cfg.PlanHandler.GetPlan)

		// Admin-only endpoints (write operations)
		plansAdmin := plans.Group("")
		plansAdmin.Use(cfg.AuthMiddleware.RequireAuth())
		{
			plansAdmin.POST("", cfg.PermissionMiddleware.RequirePermission(permission.ResourcePlan, permission.ActionCreate), cfg.PlanHandler.CreatePlan)
			plansAdmin.PATCH("/:id", cfg.PermissionMiddleware.RequirePermission(permission.ResourcePlan, permission.ActionUpdate), cfg.PlanHandler.UpdatePlan)
			plansAdmin.DELETE("/:id", cfg.PermissionMiddleware.RequirePermission(permission.ResourcePlan, permission.ActionDelete), cfg.PlanHandler.DeletePlan)
		}
	}
}
