// Package logging builds the charmbracelet/log loggers used across the engine.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/plus3/frameloop/config"
)

var (
	once     sync.Once
	fallback *log.Logger
)

// Default returns the process-wide logger used when nothing else is configured.
func Default() *log.Logger {
	once.Do(func() {
		fallback = New(config.Default().Logging, os.Stderr)
	})
	return fallback
}

// New builds a prefixed, timestamped logger writing to w.
func New(cfg config.LoggingConfig, w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "frameloop",
		Formatter:       formatter(cfg.Format),
	})
	l.SetLevel(ParseLevel(cfg.Level))
	return l
}

// ParseLevel maps a config level name to a log level, defaulting to info.
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

func formatter(name string) log.Formatter {
	switch strings.ToLower(name) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
