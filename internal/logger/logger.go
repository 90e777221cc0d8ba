// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-rpush daemon.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	file io.Closer
}

// Options describes a logger built from the daemon configuration.
type Options struct {
	// Role is attached to every entry as the "role" field.
	Role string
	// Level is the minimum level emitted by the logger.
	Level zerolog.Level
	// File is the path of the log file. Entries are appended; the parent
	// directory is created when missing. Empty means no file output.
	File string
	// Foreground additionally writes every entry to os.Stdout.
	Foreground bool
}

func init() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a *Logger for the given role label (e.g. "rpush",
// "config").
//
// The logger is configured with:
//   - global log level lowered to at least Debug;
//   - a "role" field set to role;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
//
// Output is written to os.Stdout in JSON format.
func NewLogger(role string) *Logger {
	lowerGlobalLevel(zerolog.DebugLevel)

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger}
}

// lowerGlobalLevel makes sure the global level does not filter out entries
// at lvl. It never raises the global level.
func lowerGlobalLevel(lvl zerolog.Level) {
	if lvl < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(lvl)
	}
}

// New builds a *Logger from opts. When neither a file nor foreground output
// is requested the logger writes to os.Stdout so nothing is silently lost.
// The log file stays open until [Logger.Close].
func New(opts Options) (*Logger, error) {
	writers := make([]io.Writer, 0, 2)
	var logFile *os.File

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("error creating log directory: %w", err)
		}

		var err error
		logFile, err = os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
		writers = append(writers, logFile)
	}

	if opts.Foreground || len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	lowerGlobalLevel(opts.Level)

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(opts.Level).
		With().
		Str("role", opts.Role).
		Timestamp().
		Caller().
		Logger()

	l := &Logger{Logger: logger}
	if logFile != nil {
		l.file = logFile
	}
	return l, nil
}

// Close closes the log file opened by [New]. It is a no-op for loggers
// without one and safe to call more than once.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
