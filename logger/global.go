package logger

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/handler"
)

// ErrAlreadyInitialized is returned when a global logger is installed twice.
var ErrAlreadyInitialized = errors.New("logger: global logger already initialized")

var (
	global atomic.Pointer[Logger]
	// pending stands in for the global logger until Init and follows it
	// once installed.
	pending = &Logger{deferred: true}
)

// Init installs a Logger over h as the process-wide logger. Only the
// first successful call has an effect; the logger is never removed.
func Init(h handler.Handler) error {
	if isNil(h) {
		return errors.New("logger: nil handler")
	}
	return InitLogger(NewBuilder().WithHandler(h).Build())
}

// InitLogger installs l as the process-wide logger.
func InitLogger(l *Logger) error {
	if l == nil || isNil(l.handler) {
		return errors.New("logger: nil logger or handler")
	}
	if !global.CompareAndSwap(nil, l) {
		return ErrAlreadyInitialized
	}
	return nil
}

// Global returns the installed logger. Before Init it returns a logger
// that drops records until a global logger is installed and then
// forwards to it.
func Global() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return pending
}

// isNil also catches typed nil pointers wrapped in the interface.
func isNil(h handler.Handler) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Package-level convenience functions using the global logger. They call
// log directly so that caller capture sees the same depth as methods.

// Log logs a message at level using the global logger
func Log(level core.Level, msg string) {
	if l := Global(); l.Enabled(level) {
		l.log(level, msg)
	}
}

// Enabled reports whether the global logger emits records at level
func Enabled(level core.Level) bool {
	return Global().Enabled(level)
}

// Flush flushes the global logger
func Flush() {
	Global().Flush()
}

// Error logs an error message using the global logger
func Error(args ...any) {
	if l := Global(); l.Enabled(core.ErrorLevel) {
		l.log(core.ErrorLevel, fmt.Sprint(args...))
	}
}

// Warn logs a warning message using the global logger
func Warn(args ...any) {
	if l := Global(); l.Enabled(core.WarnLevel) {
		l.log(core.WarnLevel, fmt.Sprint(args...))
	}
}

// Info logs an info message using the global logger
func Info(args ...any) {
	if l := Global(); l.Enabled(core.InfoLevel) {
		l.log(core.InfoLevel, fmt.Sprint(args...))
	}
}

// Debug logs a debug message using the global logger
func Debug(args ...any) {
	if l := Global(); l.Enabled(core.DebugLevel) {
		l.log(core.DebugLevel, fmt.Sprint(args...))
	}
}

// Trace logs a trace message using the global logger
func Trace(args ...any) {
	if l := Global(); l.Enabled(core.TraceLevel) {
		l.log(core.TraceLevel, fmt.Sprint(args...))
	}
}

// Errorf logs a formatted error message using the global logger
func Errorf(format string, args ...any) {
	if l := Global(); l.Enabled(core.ErrorLevel) {
		l.log(core.ErrorLevel, fmt.Sprintf(format, args...))
	}
}

// Warnf logs a formatted warning message using the global logger
func Warnf(format string, args ...any) {
	if l := Global(); l.Enabled(core.WarnLevel) {
		l.log(core.WarnLevel, fmt.Sprintf(format, args...))
	}
}

// Infof logs a formatted info message using the global logger
func Infof(format string, args ...any) {
	if l := Global(); l.Enabled(core.InfoLevel) {
		l.log(core.InfoLevel, fmt.Sprintf(format, args...))
	}
}

// Debugf logs a formatted debug message using the global logger
func Debugf(format string, args ...any) {
	if l := Global(); l.Enabled(core.DebugLevel) {
		l.log(core.DebugLevel, fmt.Sprintf(format, args...))
	}
}

// Tracef logs a formatted trace message using the global logger
func Tracef(format string, args ...any) {
	if l := Global(); l.Enabled(core.TraceLevel) {
		l.log(core.TraceLevel, fmt.Sprintf(format, args...))
	}
}

// Named returns the global logger with a fixed target. Called before
// Init, the result starts logging once a global logger is installed.
func Named(target string) *Logger {
	return Global().Named(target)
}
