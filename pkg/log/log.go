package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

var (
	// ErrUnknownLevel is returned when a log level string is not recognized.
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrUnknownFormat is returned when a log format string is not recognized.
	ErrUnknownFormat = errors.New("unknown log format")
)

// Format selects how log records are rendered.
type Format string

const (
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
	FormatText   Format = "text"
)

// CreateHandlerWithStrings creates a [slog.Handler] from level and format
// strings, as they are received from CLI flags.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	format, err := GetFormat(logFormat)
	if err != nil {
		return nil, err
	}

	return CreateHandler(w, level, format), nil
}

// CreateHandler creates a [slog.Handler] that writes to w.
func CreateHandler(w io.Writer, level slog.Level, format Format) slog.Handler {
	opts := charmlog.Options{
		Level:           charmlog.Level(level),
		ReportTimestamp: true,
	}

	switch format {
	case FormatJSON:
		opts.Formatter = charmlog.JSONFormatter
	case FormatLogfmt:
		opts.Formatter = charmlog.LogfmtFormatter
	case FormatText:
		opts.Formatter = charmlog.TextFormatter
	}

	return charmlog.NewWithOptions(w, opts)
}

// GetLevel parses a log level. An empty string is [slog.LevelInfo].
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug", "trace":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// GetFormat parses a log format. An empty string is [FormatText].
func GetFormat(format string) (Format, error) {
	switch f := Format(strings.ToLower(format)); f {
	case FormatJSON, FormatLogfmt, FormatText:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
