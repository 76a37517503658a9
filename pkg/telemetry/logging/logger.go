// Package logging constructs the service's structured logger from
// configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Toluwaa-o/string-analyzer/pkg/config"
)

// New creates a slog.Logger from the logging configuration. The writer
// defaults to os.Stdout when nil.
func New(cfg config.LoggingConfig, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	case "json", "":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	return slog.New(handler), nil
}

// Setup builds a logger from the configuration, installs it as the
// process default, and returns the level var so the level can be changed
// at runtime (the config watcher uses this for live level updates).
func Setup(cfg config.LoggingConfig) (*slog.LevelVar, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	opts := &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(os.Stdout, opts)
	case "json", "":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	slog.SetDefault(slog.New(handler))
	return levelVar, nil
}

// ParseLevel converts a configuration level string to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", level)
	}
}
