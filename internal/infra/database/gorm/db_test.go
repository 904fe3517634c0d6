package gorm

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.NoError(t, sqlDB.Ping())
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}
