package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/usage"
	"github.com/seyidturgut/certifix.ai-sub001/internal/infrastructure/persistence/models"
	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/db"
)

func TestUsageRepository_Aggregate_EmptyUser(t *testing.T) {
	repo := NewUsageRepository(setupTestDB(t))

	got, err := repo.Aggregate(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, usage.Usage{}, got)
}

func TestUsageRepository_Aggregate(t *testing.T) {
	gdb := setupTestDB(t)
	log := testLogger()
	certs := NewCertificateRepository(gdb, log)
	designs := NewDesignRepository(gdb, log)
	assets := NewAssetRepository(gdb, log)
	repo := NewUsageRepository(gdb)

	owner := "user-1"
	other := "user-2"

	require.NoError(t, certs.Create(ctx, newTestCertificate(t, "c1", owner, "Go 101")))
	require.NoError(t, certs.Create(ctx, newTestCertificate(t, "c2", owner, "Go 101")))
	require.NoError(t, certs.Create(ctx, newTestCertificate(t, "c3", owner, "Rust 101")))
	require.NoError(t, certs.Create(ctx, newTestCertificate(t, "c4", other, "Zig 101")))

	require.NoError(t, designs.Create(ctx, newTestDesign(t, "d1", strPtr(owner), false)))
	require.NoError(t, designs.Create(ctx, newTestDesign(t, "d2", strPtr(owner), true)))
	// legacy row without the template flag
	require.NoError(t, gdb.Create(&models.DesignModel{
		ID: "d3", UserID: strPtr(owner), Name: "legacy", Orientation: "landscape",
	}).Error)

	// 1.5 MB rounds to 2
	require.NoError(t, assets.Create(ctx, newTestAsset(t, "a1", strPtr(owner), strings.Repeat("a", 1024*1024))))
	require.NoError(t, assets.Create(ctx, newTestAsset(t, "a2", strPtr(owner), strings.Repeat("b", 512*1024))))
	require.NoError(t, assets.Create(ctx, newTestAsset(t, "a3", nil, "anonymous")))

	got, err := repo.Aggregate(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, usage.Usage{
		Trainings:    2,
		Certificates: 3,
		Designs:      2,
		Assets:       2,
		StorageMB:    2,
	}, got)
}

func TestUsageRepository_Aggregate_CountsBytesNotCharacters(t *testing.T) {
	gdb := setupTestDB(t)
	assets := NewAssetRepository(gdb, testLogger())
	repo := NewUsageRepository(gdb)

	// "é" is two bytes in UTF-8: 393216 runes make 0.75 MB
	require.NoError(t, assets.Create(ctx, newTestAsset(t, "a1", strPtr("u"), strings.Repeat("é", 393216))))

	got, err := repo.Aggregate(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.StorageMB)
}

func TestUsageRepository_Aggregate_SeesOwnTransaction(t *testing.T) {
	gdb := setupTestDB(t)
	certs := NewCertificateRepository(gdb, testLogger())
	repo := NewUsageRepository(gdb)
	txm := db.NewTransactionManager(gdb)

	err := txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := certs.Create(txCtx, newTestCertificate(t, "c1", "u", "g")); err != nil {
			return err
		}
		got, err := repo.Aggregate(txCtx, "u")
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.Certificates)
		return nil
	})
	require.NoError(t, err)
}
