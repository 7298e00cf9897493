package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Empty(t, cfg.DBPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TUTORLINK_DB_DRIVER", "Postgres")
	t.Setenv("TUTORLINK_DB", "postgres://localhost/tutorlink?sslmode=disable")
	t.Setenv("TUTORLINK_LOG_LEVEL", "DEBUG")
	t.Setenv("TUTORLINK_LOG_FORMAT", "json")

	cfg := FromEnv()
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "postgres://localhost/tutorlink?sslmode=disable", cfg.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.DBDriver = "mysql" }},
		{"postgres without dsn", func(c *Config) { c.DBDriver = DriverPostgres }},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TUTORLINK_LOG_FORMAT=json\nTUTORLINK_LOG_LEVEL=debug\n"), 0o644))

	// Variables already set win over the file.
	t.Setenv("TUTORLINK_LOG_LEVEL", "warn")

	// Registers restoration of the original value, then clears it so the
	// file can supply it.
	t.Setenv("TUTORLINK_LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("TUTORLINK_LOG_FORMAT"))

	require.NoError(t, LoadEnvFile(path))

	cfg := FromEnv()
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "nope.env")))
}
