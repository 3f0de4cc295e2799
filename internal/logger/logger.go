// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the species-sync binaries.
//
// Every binary builds one root *Logger tagged with its role. HTTP middleware
// derives a child per request carrying trace_id and stores it in the request
// context; store and service code then picks it up with FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// New returns a JSON logger writing to out. Entries carry role, a timestamp
// and the calling function under "func".
func New(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(out).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewLogger returns a stdout logger for role.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewFileLogger appends to the file at path. Stdout is used when path is
// empty or the file cannot be opened.
func NewFileLogger(role, path string) *Logger {
	return New(openLogFile(path), role)
}

func openLogFile(path string) io.Writer {
	if path == "" {
		return os.Stdout
	}
	if dir := filepath.Dir(path); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stdout
	}
	return f
}

// Nop discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies the receiver so fields can be added to the copy only.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger stored in the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx by zerolog's WithContext.
// Without one, zerolog's default logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
