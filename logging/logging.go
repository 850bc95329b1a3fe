// Package logging builds the slog loggers used by the knapsack CLI and
// solver facade.
//
// A zero Config logs Info and above to stderr in text format:
//
//	logger := logging.New(logging.Config{})
//	logger.Info("solve done", "algorithm", "dp", "value", 220)
//
// Solvers never log on their own; the solver facade logs around each call
// through the *slog.Logger it is given.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents log severity, ordered Debug < Info < Warn < Error.
// The zero value is LevelInfo.
type Level int

const (
	// LevelDebug traces individual solver calls.
	LevelDebug Level = iota - 1

	// LevelInfo reports completed runs.
	LevelInfo

	// LevelWarn reports failed or budget-limited runs.
	LevelWarn

	// LevelError reports failures that stop the command.
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR" or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// toSlogLevel bridges Level to the standard library.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts debug, info, warn/warning and error in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// Config configures New.
type Config struct {
	// Level sets the minimum level. Default: LevelInfo.
	Level Level

	// JSON selects the JSON handler instead of text.
	JSON bool

	// Output receives the records. Default: os.Stderr.
	Output io.Writer
}

// New returns a *slog.Logger for cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
