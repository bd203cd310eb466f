// Forkful - Restaurant Listing and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkful

package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName is stamped on every entry unless Config.Service overrides it.
const ServiceName = "forkful"

// Config holds logger configuration. The server and the seed command fill
// it from config.LoggingConfig.
type Config struct {
	// Level is the minimum level. Unknown or empty values fall back to info.
	Level string

	// Format is "json" (default) or "console".
	Format string

	// Caller adds file:line to every entry.
	Caller bool

	// Service is written as the "service" field, e.g. "forkful-seed".
	Service string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the settings used before Init is called.
func DefaultConfig() Config {
	return Config{
		Level:   "info",
		Format:  "json",
		Service: ServiceName,
		Output:  os.Stderr,
	}
}

var current atomic.Pointer[zerolog.Logger]

func init() {
	Init(DefaultConfig())
}

// Init replaces the global logger. The server calls it once, right after
// configuration is loaded.
func Init(cfg Config) {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "time"
	zerolog.MessageFieldName = "message"

	l := build(cfg)
	current.Store(&l)
}

func build(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	service := cfg.Service
	if service == "" {
		service = ServiceName
	}

	zctx := zerolog.New(out).With().Timestamp().Str("service", service)
	if cfg.Caller {
		zctx = zctx.Caller()
	}
	return zctx.Logger()
}

// parseLevel accepts zerolog's level names plus "warning".
func parseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	l, err := zerolog.ParseLevel(level)
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
	return *current.Load()
}

// Debug, Info, Warn and Error start an entry on the global logger.
func Debug() *zerolog.Event { return current.Load().Debug() }
func Info() *zerolog.Event  { return current.Load().Info() }
func Warn() *zerolog.Event  { return current.Load().Warn() }
func Error() *zerolog.Event { return current.Load().Error() }

// Fatal logs and exits the process once Msg is called.
func Fatal() *zerolog.Event { return current.Load().Fatal() }

// WithComponent returns a child logger tagged with a component name, such
// as "ranking" or "category-refresher".
func WithComponent(component string) zerolog.Logger {
	return current.Load().With().Str("component", component).Logger()
}

// NewTestLogger returns a JSON logger writing to w.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
