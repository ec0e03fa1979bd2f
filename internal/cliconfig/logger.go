package cliconfig

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/statship/pkg/log"
)

// ParseLevel maps a level name ("debug", "info", "warn", "error") to zerolog.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// NewLogger returns the CLI logger writing console output to w.
func NewLogger(w io.Writer, level string) (*log.ZerologAdapter, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewZerologAdapter(w, lvl), nil
}
