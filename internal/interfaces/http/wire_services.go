package http

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	certificateUsecases "github.com/seyidturgut/certifix.ai-sub001/internal/application/certificate/usecases"
	"github.com/seyidturgut/certifix.ai-sub001/internal/application/usage/services"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/auth"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/config"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/document"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/email"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/metrics"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/permission"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/ratelimit"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/scheduler"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/token"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/http/middleware"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/db"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/services/markdown"
)

// initInfrastructure creates Redis, repositories, shared services and
// middlewares. Use cases and handlers are built on top of these.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	redisClient, err := initRedis(cfg, log)
	if err != nil {
		return err
	}
	c.redis = redisClient

	c.repos = newRepositories(c.db, log)
	c.txManager = db.NewTransactionManager(c.db)

	// Auth
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	c.enforcer, err = permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := c.enforcer.EnsureDefaults(); err != nil {
		return fmt.Errorf("failed to initialize default permissions: %w", err)
	}

	// Supporting services
	c.recorder = metrics.NewRecorder()
	c.markdown = markdown.NewMarkdownService()
	c.shareTokens = token.NewShareTokenGenerator()
	c.pdf = document.NewPDFGenerator(cfg.Verify.QRSize)
	c.mailer = newMailer(cfg, log)

	// Usage accounting
	resolver := services.NewPlanResolver(c.repos.subscriptionRepo, c.repos.planRepo, cfg.Usage.DefaultPlanID, log)
	c.limitGuard = services.NewLimitGuard(c.txManager, c.repos.userRepo, resolver, c.repos.usageRepo, c.recorder, log)

	// Middlewares
	var limiter ratelimit.RateLimiter = ratelimit.NoopRateLimiter{}
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis)
	} else {
		log.Warnw("redis disabled, rate limiting is off")
	}
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)
	c.rateLimiter = middleware.NewRateLimiter(limiter, cfg.RateLimit.Limit, cfg.RateLimit.Window(), log)

	return nil
}

// initBackground creates the subscription expiry scheduler. It is started by
// Start, not here.
func (c *Container) initBackground() {
	c.scheduler = scheduler.NewSubscriptionScheduler(
		c.ucs.expireSubscriptionsUC,
		c.cfg.Scheduler.ExpireInterval(),
		c.log,
	)
}

// initRedis returns nil when Redis is disabled.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

func newMailer(cfg *config.Config, log logger.Interface) certificateUsecases.IssueNotifier {
	if !cfg.Email.Enabled {
		log.Infow("email disabled, certificate notifications will not be sent")
		return email.NoopEmailService{}
	}
	return email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})
}
