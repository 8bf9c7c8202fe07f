package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradejournal/internal/config"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	cfg := config.DBConfig{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "journal.db")}
	conn, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(conn) })

	assert.Equal(t, DriverSQLite, conn.Driver)
	require.NoError(t, Ping(conn))
	require.NoError(t, AutoMigrate(conn))
	require.NoError(t, SetTimezone(conn, "UTC"))

	for _, table := range []string{"trades", "tags", "trade_tags", "trade_screenshots"} {
		assert.True(t, conn.Gorm.Migrator().HasTable(table), table)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(config.DBConfig{Driver: "oracle"})
	assert.ErrorContains(t, err, "unsupported db driver")
}

func TestNilHelpers(t *testing.T) {
	assert.NoError(t, Close(nil))
	assert.NoError(t, Ping(nil))
	assert.NoError(t, AutoMigrate(nil))
	assert.NoError(t, SetTimezone(nil, "UTC"))
}
