package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/handlers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/middleware"
)

// DesignRouteConfig holds dependencies for design and asset routes.
type DesignRouteConfig struct {
	DesignHandler  *handlers.DesignHandler
	AssetHandler   *handlers.AssetHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupDesignRoutes configures design and asset routes.
func SetupDesignRoutes(engine *gin.Engine, cfg *DesignRouteConfig) {
	designs := engine.Group("/designs")
	designs.Use(cfg.AuthMiddleware.RequireAuth())
	{
		designs.POST("", cfg.DesignHandler.CreateDesign)
		designs.GET("", cfg.DesignHandler.ListDesigns)
		designs.GET("/:id", cfg.DesignHandler.GetDesign)
		designs.PATCH("/:id", cfg.DesignHandler.UpdateDesign)
		designs.DELETE("/:id", cfg.DesignHandler.DeleteDesign)
	}

	assets := engine.Group("/assets")
	assets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		assets.POST("", cfg.AssetHandler.CreateAsset)
		assets.GET("", cfg.AssetHandler.ListAssets)
		assets.GET("/:id", cfg.AssetHandler.GetAsset)
		assets.DELETE("/:id", cfg.AssetHandler.DeleteAsset)
	}
}
