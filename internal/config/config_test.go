package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TT_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, int64(16*1024*1024), cfg.Upload.MaxSizeBytes)
	assert.Equal(t, os.TempDir(), cfg.Upload.Dir)
	assert.True(t, cfg.Limits.RateLimitEnabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TT_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("TT_SERVER_PORT", "9000")
	t.Setenv("TT_LOGGING_LEVEL", "debug")
	t.Setenv("TT_UPLOAD_MAX_SIZE_BYTES", "1024")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, int64(1024), cfg.Upload.MaxSizeBytes)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown log level", key: "TT_LOGGING_LEVEL", value: "verbose"},
		{name: "unknown log format", key: "TT_LOGGING_FORMAT", value: "xml"},
		{name: "port out of range", key: "TT_SERVER_PORT", value: "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TT_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "upload:\n  dir: " + dir + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("TT_CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Upload.Dir)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))
	t.Setenv("TT_CONFIG_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}
