package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/handlers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/middleware"
)

type UsageRouteConfig struct {
	UsageHandler   *handlers.UsageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUsageRoutes(engine *gin.Engine, cfg *UsageRouteConfig) {
	usage := engine.Group("/usage")
	usage.Use(cfg.AuthMiddleware.RequireAuth())
	{
		usage.GET("/:userId", cfg.UsageHandler.GetUsage)
	}
}
