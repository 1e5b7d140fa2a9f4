package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaspeek/gaspeek/internal/geocode"
	"github.com/gaspeek/gaspeek/pkg/gasprices"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, gasprices.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, gasprices.DefaultTimeout, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, geocode.DefaultServer, cfg.NominatimServer)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GASPEEK_BASE_URL", "http://gas.example.com:5000")
	t.Setenv("GASPEEK_REQUEST_TIMEOUT", "10s")
	t.Setenv("GASPEEK_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://gas.example.com:5000", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gaspeek.yaml")
	contents := "base_url: http://10.0.0.5:5000\nlog_level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:5000", cfg.BaseURL)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, gasprices.DefaultTimeout, cfg.RequestTimeout)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("GASPEEK_LOG_LEVEL", "loud")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, test := range tests {
		cfg := Config{LogLevel: test.level}
		assert.Equal(t, test.expected, cfg.SlogLevel())
	}
}
