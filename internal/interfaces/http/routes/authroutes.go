package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/handlers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimiter *middleware.RateLimiter
}

// SetupAuthRoutes configures registration and login.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	auth.Use(cfg.RateLimiter.Limit("auth"))
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
	}
}
