package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "/opt/2getpro/.env", cfg.Paths.EnvFile)
	assert.Equal(t, 7, cfg.Backup.KeepLast)
	assert.Equal(t, 30, cfg.Readiness.Attempts)
	assert.Equal(t, 2*time.Second, cfg.ReadinessInterval())
	assert.Equal(t, 30*24*time.Hour, cfg.BackupMaxAge())
	assert.Zero(t, cfg.Collector.MaxAttempts, "retries unbounded by default")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Paths.EnvFile, cfg.Paths.EnvFile)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "installer.yaml")
	content := `
paths:
  env_file: /srv/bot/.env
backup:
  keep_last: 3
  s3:
    enabled: true
    bucket: getpro-backups
collector:
  max_attempts: 5
log:
  file: /var/log/getpro-install.log
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/bot/.env", cfg.Paths.EnvFile)
	assert.Equal(t, 3, cfg.Backup.KeepLast)
	assert.True(t, cfg.Backup.S3.Enabled)
	assert.Equal(t, "getpro-backups", cfg.Backup.S3.Bucket)
	assert.Equal(t, 5, cfg.Collector.MaxAttempts)
	assert.Equal(t, "/var/log/getpro-install.log", cfg.Log.File)

	// Untouched sections keep their defaults
	assert.Equal(t, 30, cfg.Readiness.Attempts)
}
