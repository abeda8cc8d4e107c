package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledgerd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LEDGER_ADDR", "LOG_LEVEL", "LOG_FORMAT", "LEDGER_AUTH_SECRET", "LEDGER_METRICS_PATH"} {
		t.Setenv(key, "")
	}

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
addr: ":9090"
log_level: debug
log_format: json
auth_secret: s3cret
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "s3cret", cfg.AuthSecret)
	assert.Equal(t, "/metrics", cfg.MetricsPath)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "addr: \":9090\"\nlog_level: debug\n")
	t.Setenv("LEDGER_ADDR", ":7070")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "addr: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "log_level: loud\nlog_format: xml\nmetrics_path: metrics\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log_level")
		assert.Contains(t, err.Error(), "log_format")
		assert.Contains(t, err.Error(), "metrics_path")
	})
}
