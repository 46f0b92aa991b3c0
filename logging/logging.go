// Package logging builds the slog loggers used by pathbench commands.
//
// A zero Config writes Info and above to stderr in text format. JSON switches
// to one object per line, suitable for collecting batch logs from a
// long-running sweep.
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug})
//	logger.Info("batch started", "total", total)
//
// Callers attach context with slog.Logger.With; there are no package-level
// loggers.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownLevel indicates a level name ParseLevel does not recognize.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Level is a log severity. Setting a minimum level filters out everything
// below it.
type Level int

const (
	// LevelInfo is the zero value so an empty Config logs normal operation.
	LevelInfo Level = iota
	// LevelDebug adds per-configuration skips and engine details.
	LevelDebug
	// LevelWarn keeps only recoverable problems and failures.
	LevelWarn
	// LevelError keeps only failures.
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
}

// String returns the lower-case level name.
func (l Level) String() string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(b []byte) error {
	v, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLevel resolves debug, info, warn (or warning) and error,
// case-insensitively. The empty string is info.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("ParseLevel(%q): %w", s, ErrUnknownLevel)
}

func (l Level) slogLevel() slog.Level {
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

// Config configures New.
type Config struct {
	Level   Level  `yaml:"level"`
	JSON    bool   `yaml:"json"`
	Service string `yaml:"service,omitempty"`

	// Writer receives the output; nil means os.Stderr.
	Writer io.Writer `yaml:"-"`
	// Quiet discards everything regardless of Level.
	Quiet bool `yaml:"quiet"`
}

// New returns a logger for cfg. A non-empty Service is attached to every
// record as the "service" attribute.
func New(cfg Config) *slog.Logger {
	if cfg.Quiet {
		return Discard()
	}
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.slogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	if cfg.Service != "" {
		h = h.WithAttrs([]slog.Attr{slog.String("service", cfg.Service)})
	}
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
