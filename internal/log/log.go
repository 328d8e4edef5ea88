// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package log is the logger used by the command-line tools.
// The bitrev package itself never logs.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	RFC3339Milli = "2006-01-02T15:04:05.000Z07:00"
)

var (
	log   zerolog.Logger
	logMu sync.RWMutex
)

func init() {
	// Always have a usable logger, even before Init is called.
	setLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: RFC3339Milli}).
		Level(zerolog.ErrorLevel).With().Timestamp().Logger())
}

// Logger provides access to the global logger.
func Logger() *zerolog.Logger {
	logger := getLogger()
	return &logger
}

func getLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return log
}

func setLogger(logger zerolog.Logger) {
	logMu.Lock()
	log = logger
	logMu.Unlock()
}

// Init sets up the global logger at the given level, writing to "stdout",
// "stderr", or the named file. Files ending in ".json" receive raw JSON lines.
func Init(level, output string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	var out io.Writer
	switch output {
	case "stdout":
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: RFC3339Milli}
	case "stderr", "":
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: RFC3339Milli}
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot create log output: %w", err)
		}
		out = f
		if len(output) < 5 || output[len(output)-5:] != ".json" {
			out = zerolog.ConsoleWriter{Out: f, TimeFormat: RFC3339Milli, NoColor: true}
		}
	}
	InitWriter(lvl, out)
	return nil
}

// InitWriter sets up the global logger to write to w at the given level.
func InitWriter(level zerolog.Level, w io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	setLogger(zerolog.New(w).Level(level).With().Timestamp().Logger())
}

func parseLevel(level string) (zerolog.Level, error) {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel, nil
	case LevelInfo:
		return zerolog.InfoLevel, nil
	case LevelWarn:
		return zerolog.WarnLevel, nil
	case LevelError:
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("invalid log level: %q", level)
}

// Debugw sends a debug level log message with key-value pairs.
func Debugw(msg string, keyvalues ...any) {
	Logger().Debug().Fields(keyvalues).Msg(msg)
}

// Infow sends an info level log message with key-value pairs.
func Infow(msg string, keyvalues ...any) {
	Logger().Info().Fields(keyvalues).Msg(msg)
}

// Errorw sends an error level log message with the error and key-value pairs.
func Errorw(err error, msg string, keyvalues ...any) {
	Logger().Error().Err(err).Fields(keyvalues).Msg(msg)
}
