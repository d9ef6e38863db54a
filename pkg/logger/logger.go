package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvVarLogLevel is the environment variable name for setting the log level.
	EnvVarLogLevel = "LOG_LEVEL"

	// FormatJSON writes one JSON object per line.
	FormatJSON = "json"

	// FormatText writes logfmt style key=value lines.
	FormatText = "text"
)

// New creates a logger writing to w in the given format ("json" or "text").
// Unknown formats fall back to JSON.
func New(w io.Writer, format, module, version, level string) *slog.Logger {
	lev := ParseLogLevel(level)
	opts := &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	}

	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(format), FormatText) {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}

	return slog.New(h).With("module", module, "version", version)
}

// NewLogLogger creates a standard library log.Logger that writes through a
// slog text handler on stderr at the specified level.
func NewLogLogger(level slog.Level, withSource bool) *log.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: withSource,
	})

	return slog.NewLogLogger(handler, level)
}

// SetDefault creates a logger with New and installs it as the slog default.
// A non-empty LOG_LEVEL environment variable takes precedence over level.
func SetDefault(w io.Writer, format, module, version, level string) *slog.Logger {
	if env := os.Getenv(EnvVarLogLevel); env != "" {
		level = env
	}

	l := New(w, format, module, version, level)
	slog.SetDefault(l)

	return l
}

// ParseLogLevel converts a string representation of a log level into a slog.Level.
// Defaults to slog.LevelInfo for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	var lev slog.Level

	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lev = slog.LevelDebug
	case "warn", "warning":
		lev = slog.LevelWarn
	case "error":
		lev = slog.LevelError
	default:
		lev = slog.LevelInfo
	}

	return lev
}
