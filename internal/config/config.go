// Package config loads tutorlink settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all tutorlink configuration.
type Config struct {
	// DBDriver selects the journal database. Values: "sqlite", "postgres".
	DBDriver string

	// DBPath is the SQLite file path or the Postgres DSN. Empty selects the
	// default SQLite location.
	DBPath string

	Log LogConfig
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string // debug, info, warn, error. Default: "info"
	Format string // text or json. Default: "text"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DBDriver: DriverSQLite,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadEnvFile loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func FromEnv() Config {
	cfg := DefaultConfig()

	if d := os.Getenv("TUTORLINK_DB_DRIVER"); d != "" {
		cfg.DBDriver = strings.ToLower(d)
	}
	if p := os.Getenv("TUTORLINK_DB"); p != "" {
		cfg.DBPath = p
	}
	if l := os.Getenv("TUTORLINK_LOG_LEVEL"); l != "" {
		cfg.Log.Level = strings.ToLower(l)
	}
	if f := os.Getenv("TUTORLINK_LOG_FORMAT"); f != "" {
		cfg.Log.Format = strings.ToLower(f)
	}

	return cfg
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DBPath == "" {
			return fmt.Errorf("TUTORLINK_DB is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown database driver: %q", c.DBDriver)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.Log.Format)
	}
	return nil
}
