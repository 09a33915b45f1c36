// Package xlog builds the slog.Handler used for internal engineering
// diagnostics (parser trace, cache eviction, axis-walk debug) — never
// the user-facing warning channel, which lives in package warning.
// Logging is off by default; a host opts in by supplying its own
// *slog.Logger through xpath.WithLogger, or builds one from a pair of
// level/format strings (e.g. loaded from a config file) with
// NewLoggerFromStrings.
package xlog // import "github.com/CognitoIQ/go-xpath/internal/xlog"

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format selects the slog.Handler implementation NewHandler builds.
type Format string

const (
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
)

var (
	ErrUnknownLevel  = errors.New("xlog: unknown log level")
	ErrUnknownFormat = errors.New("xlog: unknown log format")
)

// GetLevel parses a level string ("error", "warn", "info", "debug")
// case-insensitively.
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// GetFormat parses a format string ("json" or "logfmt").
func GetFormat(format string) (Format, error) {
	switch Format(strings.ToLower(format)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatLogfmt, "":
		return FormatLogfmt, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// NewHandler builds a slog.Handler writing to w at the given level and
// format.
func NewHandler(w io.Writer, level slog.Level, format Format) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// NewLoggerFromStrings builds a *slog.Logger from level/format strings,
// for hosts that declare logging configuration as plain text (CLI
// flags, a config file) rather than constructing a slog.Logger by hand.
func NewLoggerFromStrings(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}
	fmtt, err := GetFormat(format)
	if err != nil {
		return nil, err
	}
	return slog.New(NewHandler(w, lvl, fmtt)), nil
}

// Discard is the default logger: a handler that drops everything,
// since internal logging is opt-in.
var Discard = slog.New(slog.NewTextHandler(io.Discard, nil))
