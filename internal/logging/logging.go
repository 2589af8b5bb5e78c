// Package logging builds the zerolog logger used by the command line tool.
// Terminals get human-readable console output, everything else JSON.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum level to output.
	Level string
	// Format is the output format: auto, console or json.
	Format string
	// Output is stderr, stdout, discard or a file path.
	Output string
	// NoColor disables color in console output.
	NoColor bool

	// Writer overrides Output when set.
	Writer io.Writer
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Level:   "info",
		Format:  "auto",
		Output:  "stderr",
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// New creates a logger from cfg. A file output that cannot be opened falls
// back to stderr.
func New(cfg Config) zerolog.Logger {
	level := ParseLevel(cfg.Level)
	logger := zerolog.New(writer(cfg)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

func writer(cfg Config) io.Writer {
	out := cfg.Writer
	if out == nil {
		switch strings.ToLower(cfg.Output) {
		case "", "stderr":
			out = os.Stderr
		case "stdout":
			out = os.Stdout
		case "discard", "none":
			out = io.Discard
		default:
			file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				out = os.Stderr
			} else {
				out = file
			}
		}
	}

	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if isTerminal(out) {
			format = "console"
		}
	}

	switch format {
	case "console", "pretty":
		return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: cfg.NoColor}
	default:
		return out
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// ParseLevel parses a level name, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "warning":
		return zerolog.WarnLevel
	case "off", "none":
		return zerolog.Disabled
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return l
}

type contextKey struct{}

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts the logger from context, or returns a disabled one.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*zerolog.Logger); ok && logger != nil {
			return logger
		}
	}
	nop := zerolog.Nop()
	return &nop
}
