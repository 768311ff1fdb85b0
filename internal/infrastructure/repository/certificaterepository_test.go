package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyidturgut/certifix.ai-sub001/internal/domain/certificate"
)

func TestCertificateRepository_CRUD(t *testing.T) {
	repo := NewCertificateRepository(setupTestDB(t), testLogger())

	c := newTestCertificate(t, "cert-1", "user-1", "Go 101")
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, "cert-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Go 101", got.GroupName())
	assert.Equal(t, certificate.StatusValid, got.Status())
	assert.JSONEq(t, `{"objects":[]}`, string(got.DesignJSON()))
	assert.True(t, got.MatchesToken("token-cert-1"))

	got.Revoke()
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, "cert-1")
	require.NoError(t, err)
	assert.True(t, got.IsRevoked())

	exists, err := repo.ExistsByID(ctx, "cert-1")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, "cert-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "cert-1"), certificate.ErrCertificateNotFound)

	missing, err := repo.GetByID(ctx, "cert-1")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCertificateRepository_ListAndCount(t *testing.T) {
	repo := NewCertificateRepository(setupTestDB(t), testLogger())

	for _, id := range []string{"c1", "c2", "c3"} {
		require.NoError(t, repo.Create(ctx, newTestCertificate(t, id, "user-1", "Go 101")))
	}
	require.NoError(t, repo.Create(ctx, newTestCertificate(t, "c4", "user-1", "Rust 101")))
	require.NoError(t, repo.Create(ctx, newTestCertificate(t, "c5", "user-2", "Go 101")))

	items, total, err := repo.List(ctx, certificate.ListFilter{UserID: "user-1", Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, items, 2)

	items, total, err = repo.List(ctx, certificate.ListFilter{UserID: "user-1", GroupName: "Go 101", Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 3)

	n, err := repo.CountInGroup(ctx, "user-1", "Go 101")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.CountInGroup(ctx, "user-2", "Rust 101")
	require.NoError(t, err)
	assert.Zero(t, n)
}
