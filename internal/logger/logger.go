// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for vibe-vault.
//
// The server writes JSON entries to stdout, each tagged with the process role,
// a "ts" timestamp and the calling function. The CLI writes console output to
// stderr instead. Request handlers never hold a logger of their own: they pull
// the request-scoped one, enriched with trace_id, through FromRequest or
// FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	timestampField = "ts"
	callerField    = "func"
)

// Logger embeds zerolog.Logger, so Debug, Info, Error and friends are called
// on it directly.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the JSON logger of a server process tagged with role.
// It lowers the global level to debug and reports callers by function name.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.TimestampFieldName = timestampField
	zerolog.CallerFieldName = callerField
	zerolog.CallerMarshalFunc = funcName

	return newLogger(os.Stdout, role, zerolog.DebugLevel, true)
}

// NewCLILogger returns a console logger on stderr for the client. Only
// warnings and errors pass unless verbose is set.
func NewCLILogger(verbose bool) *Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return newLogger(out, "client", level, false)
}

func newLogger(w io.Writer, role string, level zerolog.Level, withCaller bool) *Logger {
	ctx := zerolog.New(w).Level(level).With().Str("role", role).Timestamp()
	if withCaller {
		ctx = ctx.Caller()
	}

	return &Logger{ctx.Logger()}
}

func funcName(pc uintptr, _ string, _ int) string {
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return "unknown"
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger copies l. Fields added to the copy do not leak into l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest is FromContext for r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// Without one it falls back to zerolog.DefaultContextLogger, or a disabled
// logger when that is unset. The result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
