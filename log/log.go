// log/log.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger and adds printf-style logging methods; all of
// the mui packages take one of these rather than using the default slog
// logger so that the embedding application stays in control of log output.
type Logger struct {
	*slog.Logger
	LogFile string
	Start   time.Time
}

// New returns a Logger that logs at the given level ("debug", "info",
// "warn", or "error"). If logFile is non-empty, output goes there as JSON
// with rotation; otherwise it is written to stderr as text.
func New(level string, logFile string) *Logger {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "", "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "%s: invalid log level; using \"info\"\n", level)
		slogLevel = slog.LevelInfo
	}

	var h slog.Handler
	if logFile != "" {
		w := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    32, // megabytes
			MaxBackups: 1,
		}
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slogLevel, AddSource: true})
	} else {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})
	}

	return &Logger{
		Logger:  slog.New(h),
		LogFile: logFile,
		Start:   time.Now(),
	}
}

// Discard returns a Logger that drops everything it is given; it is handy
// for tests.
func Discard() *Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.Level(100)})
	return &Logger{Logger: slog.New(h), Start: time.Now()}
}

func (l *Logger) Debugf(msg string, args ...any) {
	if l == nil {
		return
	}
	l.logf(slog.LevelDebug, msg, args...)
}

func (l *Logger) Infof(msg string, args ...any) {
	if l == nil {
		return
	}
	l.logf(slog.LevelInfo, msg, args...)
}

func (l *Logger) Warnf(msg string, args ...any) {
	if l == nil {
		return
	}
	l.logf(slog.LevelWarn, msg, args...)
}

func (l *Logger) Errorf(msg string, args ...any) {
	if l == nil {
		return
	}
	l.logf(slog.LevelError, msg, args...)
}

// logf builds the slog.Record by hand so that the reported source location
// is the caller of Debugf et al. rather than this file.
func (l *Logger) logf(level slog.Level, msg string, args ...any) {
	h := l.Logger.Handler()
	if !h.Enabled(context.Background(), level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // runtime.Callers, logf, Debugf/Infof/...
	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(msg, args...), pcs[0])
	_ = h.Handle(context.Background(), r)
}

// CatchAndReportCrash should be deferred at the top of the program's
// long-running entry points; it logs the panic and stack trace rather than
// letting the process die silently.
func (l *Logger) CatchAndReportCrash() {
	if err := recover(); err != nil {
		l.Errorf("Caught panic: %v\n%s", err, string(debug.Stack()))
	}
}
