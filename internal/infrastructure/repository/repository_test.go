package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/asset"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/design"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// every connection to ":memory:" is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func newTestCertificate(t *testing.T, id, userID, group string) *certificate.Certificate {
	t.Helper()
	c, err := certificate.NewCertificate(certificate.Issue{
		ID:            id,
		UserID:        userID,
		RecipientName: "Recipient " + id,
		ProgramName:   "Go Bootcamp",
		IssueDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		DesignJSON:    []byte(`{"objects":[]}`),
		GroupName:     group,
	}, "token-"+id)
	require.NoError(t, err)
	return c
}

func newTestDesign(t *testing.T, id string, userID *string, isTemplate bool) *design.Design {
	t.Helper()
	d, err := design.NewDesign(id, userID, "Design "+id, []byte(`{"v":1}`), "", nil, isTemplate)
	require.NoError(t, err)
	return d
}

func newTestAsset(t *testing.T, id string, userID *string, content string) *asset.Asset {
	t.Helper()
	a, err := asset.NewAsset(id, userID, id+".png", "image/png", content)
	require.NoError(t, err)
	return a
}

func strPtr(s string) *string { return &s }

var ctx = context.Background()
