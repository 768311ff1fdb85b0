package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/handlers"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/middleware"
)

// CertificateRouteConfig holds dependencies for certificate and public
// verification routes.
type CertificateRouteConfig struct {
	CertificateHandler  *handlers.CertificateHandler
	VerificationHandler *handlers.VerificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimiter         *middleware.RateLimiter
}

// SetupCertificateRoutes configures certificate issuing and management.
func SetupCertificateRoutes(engine *gin.Engine, cfg *CertificateRouteConfig) {
	certificates := engine.Group("/certificates")
	certificates.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Specific paths first
		certificates.POST("/bulk", cfg.CertificateHandler.BulkIssueCertificates)

		certificates.POST("", cfg.CertificateHandler.IssueCertificate)
		certificates.GET("", cfg.CertificateHandler.ListCertificates)
		certificates.GET("/:id", cfg.CertificateHandler.GetCertificate)
		certificates.PATCH("/:id/revoke", cfg.CertificateHandler.RevokeCertificate)
		certificates.DELETE("/:id", cfg.CertificateHandler.DeleteCertificate)
	}
}

// SetupVerificationRoutes configures the public verification endpoints.
func SetupVerificationRoutes(engine *gin.Engine, cfg *CertificateRouteConfig) {
	verify := engine.Group("/verify")
	verify.Use(cfg.RateLimiter.Limit("verify"))
	{
		verify.GET("/:id", cfg.VerificationHandler.Verify)
		verify.GET("/:id/qr", cfg.VerificationHandler.QRCode)
		verify.GET("/:id/pdf", cfg.VerificationHandler.PDF)
	}
}
