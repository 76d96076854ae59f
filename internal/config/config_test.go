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
	// Run from a directory without a config file.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := NewLoader("").Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9402, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 1_000_000, cfg.Extract.ReformatThreshold)
	assert.Equal(t, "\n", cfg.Extract.ContextDelimiter)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linksift.yml")
	content := `server:
  port: 8123
  host: 127.0.0.1
extract:
  reformat_threshold: 500
logging:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, 8123, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 500, cfg.Extract.ReformatThreshold)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset keys keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linksift.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8123\n"), 0644))

	t.Setenv("LINKSIFT_SERVER_PORT", "9000")
	t.Setenv("LINKSIFT_LOGGING_LEVEL", "warn")

	cfg, err := NewLoader(path).Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing.yml")).Load()
	assert.Error(t, err)
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, ErrInvalidPort},
		{"bad timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, ErrInvalidTimeout},
		{"negative rate", func(c *Config) { c.Server.RateLimit = -1 }, ErrInvalidRateLimit},
		{"negative threshold", func(c *Config) { c.Extract.ReformatThreshold = -1 }, ErrInvalidThreshold},
		{"empty delimiter", func(c *Config) { c.Extract.ContextDelimiter = "" }, ErrEmptyDelimiter},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, ErrInvalidLogLevel},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_DefaultIsValid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(Default()))
}
