// Package logging wires zerolog for the docking engine and the dockit CLI.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string

	// FileDir enables a rotating log file next to stderr when set.
	FileDir    string
	MaxSizeMB  int
	MaxBackups int

	// NoStderr keeps stderr free, for full-screen terminal UIs.
	NoStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// New creates a new zerolog logger with the given configuration.
// The returned closer releases the log file, if any.
func New(cfg Config) (zerolog.Logger, io.Closer) {
	var output io.Writer = os.Stderr
	switch {
	case cfg.NoStderr:
		output = io.Discard
	case cfg.Format == "console":
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	}

	var closer io.Closer = nopCloser{}
	if cfg.FileDir != "" {
		rotator, err := NewLogRotator(cfg.FileDir, "dockit.log", cfg.MaxSizeMB, cfg.MaxBackups)
		if err == nil {
			if cfg.NoStderr {
				output = rotator
			} else {
				output = zerolog.MultiLevelWriter(output, rotator)
			}
			closer = rotator
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger(), closer
}

// NewFromEnv creates a logger based on environment variables
// DOCKIT_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DOCKIT_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("DOCKIT_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("DOCKIT_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	logger, _ := New(cfg)
	return logger
}

// NewFromConfigValues creates a stderr logger from config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" {
		cfg.Format = format
	}
	logger, _ := New(cfg)
	return logger
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	}
	return zerolog.InfoLevel
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
