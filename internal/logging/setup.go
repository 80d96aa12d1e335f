package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options controls how the client logger is built.
type Options struct {
	Level  string    // "debug", "info", "warn", "error" (default: "info")
	Format string    // "text" or "json" (default: "text")
	Output io.Writer // default: os.Stderr, so REPL output on stdout stays clean
}

// ParseLevel converts a level name to slog.Level.
// Returns slog.LevelInfo for unrecognized values.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate returns an error if the level string is not recognized.
func Validate(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error", "":
		return nil
	default:
		return fmt.Errorf("unknown log level %q (valid: debug, info, warn, error)", level)
	}
}

// Validate checks both the level and the format.
func (o Options) Validate() error {
	if err := Validate(o.Level); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(o.Format)) {
	case FormatText, FormatJSON, "":
		return nil
	default:
		return fmt.Errorf("unknown log format %q (valid: text, json)", o.Format)
	}
}

// Setup builds a SlogLogger from opts and installs the underlying
// slog.Logger as the process default.
func Setup(opts Options) (*SlogLogger, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := ParseLevel(opts.Level)
	handlerOpts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case FormatJSON:
		handler = slog.NewJSONHandler(out, handlerOpts)
	default:
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	l := slog.New(handler).With("app", "jobdesk")
	slog.SetDefault(l)
	return NewSlogLogger(l), nil
}
