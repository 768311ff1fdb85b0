package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	certificateUsecases "github.com/seyidturgut/certifix.ai-sub001/internal/application/certificate/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/usage/services"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/auth"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/config"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/document"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/metrics"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/permission"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/scheduler"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/token"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/middleware"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/db"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/services/markdown"
)

// Container holds every component of the HTTP application and owns the
// resources that need closing on shutdown. The database handle is owned by
// the caller.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Shared services
	txManager   *db.TransactionManager
	hasher      *auth.BcryptPasswordHasher
	jwtSvc      *auth.JWTService
	enforcer    *permission.Enforcer
	recorder    *metrics.Recorder
	markdown    markdown.MarkdownService
	shareTokens token.ShareTokenGenerator
	pdf         *document.PDFGenerator
	mailer      certificateUsecases.IssueNotifier
	limitGuard  *services.LimitGuard

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	scheduler *scheduler.SubscriptionScheduler
}

// NewContainer wires repositories, services, use cases and handlers and
// registers all routes on a fresh gin engine.
func NewContainer(cfg *config.Config, db *gorm.DB, log logger.Interface) (*Container, error) {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("failed to initialize infrastructure: %w", err)
	}
	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers()
	c.initBackground()

	c.SetupRoutes()

	return c, nil
}

// Engine returns the configured gin engine, used as the server handler.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Start launches background jobs. They stop when ctx is cancelled or on
// Shutdown.
func (c *Container) Start(ctx context.Context) {
	c.scheduler.Start(ctx)
}

// Shutdown stops background jobs and closes Redis.
func (c *Container) Shutdown() {
	if c.scheduler != nil {
		c.scheduler.Stop()
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}

	c.log.Infow("container shut down")
}
