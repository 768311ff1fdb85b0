// Package testutil wires real repositories over an in-memory SQLite
// database for application layer tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/asset"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/design"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/plan"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/setting"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/subscription"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/user"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/repository"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/db"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

var subscriptionStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Env bundles the repositories of one isolated test database.
type Env struct {
	DB            *gorm.DB
	TxManager     *db.TransactionManager
	Plans         plan.Repository
	Subscriptions subscription.Repository
	Certificates  certificate.Repository
	Designs       design.Repository
	Assets        asset.Repository
	Users         user.Repository
	Settings      setting.Repository
	Usage         *repository.UsageRepository
	Logger        logger.Interface
}

// NewEnv opens a fresh in-memory database with the full schema.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// every connection to ":memory:" is a separate database
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(models.All()...))

	log := NewLogger()
	return &Env{
		DB:            gdb,
		TxManager:     db.NewTransactionManager(gdb),
		Plans:         repository.NewPlanRepository(gdb, log),
		Subscriptions: repository.NewSubscriptionRepository(gdb, log),
		Certificates:  repository.NewCertificateRepository(gdb, log),
		Designs:       repository.NewDesignRepository(gdb, log),
		Assets:        repository.NewAssetRepository(gdb, log),
		Users:         repository.NewUserRepository(gdb, log),
		Settings:      repository.NewSystemSettingRepository(gdb, log),
		Usage:         repository.NewUsageRepository(gdb),
		Logger:        log,
	}
}

// NewLogger discards everything.
func NewLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// SeedPlan stores a plan with the given limits.
func (e *Env) SeedPlan(t *testing.T, id string, limits plan.Limits) *plan.Plan {
	t.Helper()
	p, err := plan.NewPlan(id, "Plan "+id, plan.BillingOneTime, limits, plan.Features{"qr_verification": true})
	require.NoError(t, err)
	require.NoError(t, e.Plans.Create(context.Background(), p))
	return p
}

// Subscribe gives userID an ACTIVE subscription to planID.
func (e *Env) Subscribe(t *testing.T, userID, planID string) *subscription.Subscription {
	t.Helper()
	s, err := subscription.NewSubscription(userID, planID, subscription.StatusActive, subscriptionStart, nil)
	require.NoError(t, err)
	require.NoError(t, e.Subscriptions.Create(context.Background(), s))
	return s
}

// SeedUser stores a user with a throwaway password hash.
func (e *Env) SeedUser(t *testing.T, id string, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(id, "User "+id, id+"@example.com", "$2a$04$hash", role, nil)
	require.NoError(t, err)
	require.NoError(t, e.Users.Create(context.Background(), u))
	return u
}
