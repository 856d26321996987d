// Package config provides configuration management for the todo-stats hook.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"os/user"
	"strings"
)

// LogFormat selects the log encoder
type LogFormat string

const (
	// LogFormatConsole writes human readable log lines
	LogFormatConsole LogFormat = "console"
	// LogFormatJSON writes one JSON object per log entry
	LogFormatJSON LogFormat = "json"
)

// Config holds all configuration for the todo-stats hook
type Config struct {
	// HomeDir is the invoking user's home directory
	HomeDir string

	// LogLevel is one of debug, info or error. Empty disables logging.
	LogLevel string

	// LogFormat selects the log encoder
	LogFormat LogFormat
}

// New creates a new Config instance from environment variables.
// The hook runs on every tool call, so unusable values fall back to
// defaults instead of failing the call.
func New() *Config {
	cfg := &Config{
		HomeDir: homeDir(),
	}

	// Load LogLevel - logging stays off unless asked for
	level := strings.ToLower(os.Getenv("TODOSTATS_LOG_LEVEL"))
	switch level {
	case "debug", "info", "error":
		cfg.LogLevel = level
	default:
		// Invalid value, keep logging disabled
		cfg.LogLevel = ""
	}

	// Load LogFormat - defaults to console
	switch LogFormat(strings.ToLower(os.Getenv("TODOSTATS_LOG_FORMAT"))) {
	case LogFormatJSON:
		cfg.LogFormat = LogFormatJSON
	default:
		cfg.LogFormat = LogFormatConsole
	}

	return cfg
}

// LoggingEnabled returns true if a log level was configured
func (c *Config) LoggingEnabled() bool {
	return c.LogLevel != ""
}

// homeDir prefers $HOME and falls back to the user database, then to "~"
func homeDir() string {
	if dir, err := os.UserHomeDir(); err == nil && dir != "" {
		return dir
	}
	if u, err := user.Current(); err == nil && u.HomeDir != "" {
		return u.HomeDir
	}
	return "~"
}
