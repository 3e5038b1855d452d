// Package config loads runtime settings from the environment and builds
// the process logger.
package config

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

// Config is read from environment variables.
type Config struct {
	// DBPath is a SQLite file holding the employee directory. Empty means
	// the in-memory demo directory.
	DBPath string `env:"PAYCHECK_DB"`

	// RulesPath is an optional JSON rule set replacing the built-in
	// bi-weekly model.
	RulesPath string `env:"PAYCHECK_RULES"`

	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogFormat string `env:"LOG_FORMAT, default=console"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through l; tests pass envconfig.MapLookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewLogger builds a logger writing to stderr.
func (c *Config) NewLogger() zerolog.Logger {
	return NewLogger(os.Stderr, c.LogLevel, c.LogFormat)
}

// NewLogger builds a logger for w. Unknown levels fall back to info;
// format "json" writes JSON lines, anything else a console format.
func NewLogger(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	if !strings.EqualFold(format, "json") {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
