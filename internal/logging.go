package internal

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogConfig holds logging configuration options.
type LogConfig struct {
	// Level is the minimum log level to output.
	Level slog.Level
	// JSON enables JSON output format.
	JSON bool
	// Output is the writer to write logs to. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultLogConfig logs warnings and errors to stderr, keeping the interactive transcript clean.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  slog.LevelWarn,
		Output: os.Stderr,
	}
}

// ParseLogLevel converts DEBUG, INFO, WARN or ERROR to a slog.Level.
// Unknown values map to WARN.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetupLogging builds a logger from cfg and installs it as the slog default.
func SetupLogging(cfg LogConfig) *slog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: cfg.Level,
	}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
