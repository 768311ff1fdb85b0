package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyidturgut/certifix.ai-sub001/internal/shared/config"
)

func TestNew_SQLiteMemory(t *testing.T) {
	db, err := New(&config.DatabaseConfig{Driver: "sqlite", Database: ":memory:", MaxIdleConns: 1, MaxOpenConns: 10})
	require.NoError(t, err)
	defer Close(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.Equal(t, "sqlite", db.Dialector.Name())
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestClose_Nil(t *testing.T) {
	assert.NoError(t, Close(nil))
}
