// Package logging builds the slog loggers shared by the wayfinder command and its adapters.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Format selects the handler encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat matches s case-insensitively. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q (want text or json)", s)
	}
}

type options struct {
	w      io.Writer
	format Format
}

// Option configures New.
type Option func(*options)

// WithWriter replaces os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.w = w
	}
}

// WithFormat selects text or JSON output.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// New creates the application logger. Output goes to stderr by default so stdout stays free
// for generated artifacts and the MCP stdio transport.
// "error" attributes are written as "err" and durations as milliseconds.
func New(level slog.Level, opts ...Option) *slog.Logger {
	o := options{w: os.Stderr, format: FormatText}
	for _, opt := range opts {
		opt(&o)
	}

	hopts := &slog.HandlerOptions{Level: level, ReplaceAttr: replaceAttr}
	if o.format == FormatJSON {
		return slog.New(slog.NewJSONHandler(o.w, hopts))
	}
	return slog.New(slog.NewTextHandler(o.w, hopts))
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == "error" {
		a.Key = "err"
	}
	if a.Value.Kind() == slog.KindDuration {
		a.Value = slog.Float64Value(float64(a.Value.Duration()) / float64(time.Millisecond))
		a.Key += "_ms"
	}
	return a
}

// NewNop returns a logger that drops every record.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
