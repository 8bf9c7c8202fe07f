package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvOnlyDefaults(t *testing.T) {
	cfg, err := Load("", true)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.App.Env)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, uint64(1), cfg.Auth.DevUserID)
	assert.True(t, cfg.Cron.Enabled)
	assert.Equal(t, "0 0 3 * * *", cfg.Cron.TagPrune)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
server:
  http_addr: ":9090"
db:
  driver: sqlite
  dsn: /tmp/journal.db
auth:
  jwt_secret: from-file
analytics:
  timezone: Europe/London
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("TJ_AUTH_JWT_SECRET", "from-env")

	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "/tmp/journal.db", cfg.DB.DSN)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "Europe/London", cfg.Analytics.Timezone)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), false)
	assert.Error(t, err)
}

func TestAnalyticsLocation(t *testing.T) {
	assert.Equal(t, time.UTC, AnalyticsConfig{}.Location())
	assert.Equal(t, time.UTC, AnalyticsConfig{Timezone: "Not/AZone"}.Location())

	loc := AnalyticsConfig{Timezone: "America/New_York"}.Location()
	assert.Equal(t, "America/New_York", loc.String())
}

func TestLoadRejectsUnknownAnalyticsTimezone(t *testing.T) {
	t.Setenv("TJ_ANALYTICS_TIMEZONE", "Europe/Londn")
	_, err := Load("", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analytics.timezone")
}
