// Package logging builds the diagnostic logger used across commands.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/config"
)

// Prefix is printed in front of every log line.
const Prefix = "todo"

// Options holds logger settings.
type Options struct {
	Level     log.Level
	Formatter log.Formatter
	Prefix    string
}

// OptionsFromConfig maps config values to logger options.
// Debug forces the debug level regardless of log_level.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		Level:     ParseLevel(cfg.LogLevel),
		Formatter: ParseFormatter(cfg.LogFormat),
		Prefix:    Prefix,
	}
	if cfg.Debug {
		opts.Level = log.DebugLevel
	}
	return opts
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		Prefix:          opts.Prefix,
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// ParseLevel parses a level name. Unknown names map to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseFormatter parses a formatter name. Unknown names map to text.
func ParseFormatter(format string) log.Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
