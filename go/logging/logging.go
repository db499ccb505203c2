package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const (
	// Level types
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	// Format types
	FormatJSON    = "json"
	FormatText    = "text"
	FormatConsole = "console"
)

// Opts holds logging configuration options.
type Opts struct {
	Level  string `long:"level" description:"Log level: debug, info, warn, error" default:"info"`
	Format string `long:"format" description:"Log format: json, text, console" default:"console"`
}

// Init initializes the default slog logger based on the provided options.
func Init(opts *Opts) error {
	logger, err := NewLogger(opts, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

// NewLogger builds a logger writing to w.
func NewLogger(opts *Opts, w io.Writer) (*slog.Logger, error) {
	if opts == nil {
		opts = &Opts{Level: LevelInfo, Format: FormatConsole}
	}
	handler, err := getHandler(opts, w)
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}

func getHandler(opts *Opts, w io.Writer) (slog.Handler, error) {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}
	switch opts.Format {
	case FormatJSON:
		return slog.NewJSONHandler(w, handlerOpts), nil
	case FormatText:
		return slog.NewTextHandler(w, handlerOpts), nil
	case FormatConsole, "":
		return NewConsoleHandler(w, handlerOpts), nil
	default:
		return nil, fmt.Errorf("unrecognized format: %s", opts.Format)
	}
}

var levelToSlogLevel = map[string]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

func parseLevel(level string) slog.Level {
	if l, ok := levelToSlogLevel[level]; ok {
		return l
	}
	return slog.LevelInfo
}
