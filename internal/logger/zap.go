// Package logger builds the zap logger used by the hook. Hook stdout and
// stderr are read by Claude Code, so logging is off unless configured.
package logger

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Backland-Labs/todo-stats/internal/config"
)

// LevelFromString converts a string to a zap level
func LevelFromString(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zap.DebugLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// New creates a logger writing to w as described by cfg.
// It returns a no-op logger when logging is disabled.
func New(cfg *config.Config, w io.Writer) *zap.Logger {
	if !cfg.LoggingEnabled() {
		return zap.NewNop()
	}

	var encoder zapcore.Encoder
	if cfg.LogFormat == config.LogFormatJSON {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(LevelFromString(cfg.LogLevel)))
	return zap.New(core).With(zap.String("component", "todo-stats"))
}
