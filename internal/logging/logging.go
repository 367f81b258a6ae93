// Package logging builds the process logger from configuration.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var ErrUnknownFormat = errors.New("unknown log format")

const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger writing to w. Level accepts slog names (debug, info,
// warn, error), case-insensitively; empty means info.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if strings.TrimSpace(level) != "" {
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return slog.New(handler).With(slog.String("service", "streakcard")), nil
}
