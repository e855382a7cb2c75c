package logger

import (
	"fmt"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/handler"
)

// Logger is the caller-facing logging API (immutable). It stamps records
// with time, target and caller location and hands them to its Handler.
type Logger struct {
	handler       handler.Handler
	target        string
	includeCaller bool
	callerSkip    int
	coarseClock   bool
	// extra frames added by AddCallerSkip
	extraSkip int
	// deferred loggers resolve to the global logger on every call
	deferred bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	target        string
	includeCaller bool
	callerSkip    int
	coarseClock   bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		includeCaller: true,
		callerSkip:    2, // log -> exported method -> caller
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithTarget sets a fixed target. Without one, records are targeted at
// the package of the calling function.
func (b *Builder) WithTarget(target string) *Builder {
	b.target = target
	return b
}

// WithCaller enables caller capture (default on). Disabling it leaves
// the location unknown and the target empty unless set explicitly.
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCallerSkip skips n additional frames when capturing the caller,
// for wrappers around Logger.
func (b *Builder) WithCallerSkip(n int) *Builder {
	b.callerSkip += n
	return b
}

// WithCoarseClock stamps records from a clock refreshed every 500µs
// instead of calling time.Now per record.
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarseClock = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	if b.coarseClock {
		core.StartCoarseClock()
	}
	return &Logger{
		handler:       b.handler,
		target:        b.target,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		coarseClock:   b.coarseClock,
	}
}

// Named returns a copy of the logger with a fixed target.
func (l *Logger) Named(target string) *Logger {
	c := *l
	c.target = target
	return &c
}

// AddCallerSkip returns a copy of the logger that skips n additional
// frames when capturing the caller.
func (l *Logger) AddCallerSkip(n int) *Logger {
	c := *l
	c.extraSkip += n
	return &c
}

// resolve returns the logger that does the work for l: the installed
// global logger for a deferred logger, l itself otherwise.
func (l *Logger) resolve() *Logger {
	if !l.deferred {
		return l
	}
	if g := global.Load(); g != nil {
		return g
	}
	return l
}

// Handler returns the logger's handler (nil for a no-op logger)
func (l *Logger) Handler() handler.Handler {
	return l.resolve().handler
}

// Enabled reports whether a record at level would be emitted by the
// handler. It is checked before any formatting work; skipping it
// changes nothing in the output.
func (l *Logger) Enabled(level core.Level) bool {
	h := l.resolve().handler
	return h != nil && h.Level().Enabled(level)
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string) {
	if !l.Enabled(level) {
		return
	}
	l.log(level, msg)
}

// log builds the record and dispatches it. Callers have checked Enabled.
func (l *Logger) log(level core.Level, msg string) {
	r := l.resolve()
	if r.handler == nil {
		return
	}

	rec := core.GetRecord()
	if r.coarseClock {
		rec.Time = core.CoarseNow()
	}
	rec.Level = level
	rec.Message = msg
	rec.Target = l.target
	if rec.Target == "" {
		rec.Target = r.target
	}

	if r.includeCaller {
		rec.Caller = core.GetCaller(r.callerSkip + l.extraSkip)
		if rec.Target == "" {
			rec.Target = rec.Caller.Module
		}
	}

	r.handler.Log(rec)
	core.PutRecord(rec)
}

// Error logs an error message
func (l *Logger) Error(args ...any) {
	if l.Enabled(core.ErrorLevel) {
		l.log(core.ErrorLevel, fmt.Sprint(args...))
	}
}

// Warn logs a warning message
func (l *Logger) Warn(args ...any) {
	if l.Enabled(core.WarnLevel) {
		l.log(core.WarnLevel, fmt.Sprint(args...))
	}
}

// Info logs an info message
func (l *Logger) Info(args ...any) {
	if l.Enabled(core.InfoLevel) {
		l.log(core.InfoLevel, fmt.Sprint(args...))
	}
}

// Debug logs a debug message
func (l *Logger) Debug(args ...any) {
	if l.Enabled(core.DebugLevel) {
		l.log(core.DebugLevel, fmt.Sprint(args...))
	}
}

// Trace logs a trace message
func (l *Logger) Trace(args ...any) {
	if l.Enabled(core.TraceLevel) {
		l.log(core.TraceLevel, fmt.Sprint(args...))
	}
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...any) {
	if l.Enabled(core.ErrorLevel) {
		l.log(core.ErrorLevel, fmt.Sprintf(format, args...))
	}
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...any) {
	if l.Enabled(core.WarnLevel) {
		l.log(core.WarnLevel, fmt.Sprintf(format, args...))
	}
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...any) {
	if l.Enabled(core.InfoLevel) {
		l.log(core.InfoLevel, fmt.Sprintf(format, args...))
	}
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...any) {
	if l.Enabled(core.DebugLevel) {
		l.log(core.DebugLevel, fmt.Sprintf(format, args...))
	}
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...any) {
	if l.Enabled(core.TraceLevel) {
		l.log(core.TraceLevel, fmt.Sprintf(format, args...))
	}
}

// Flush flushes the handler
func (l *Logger) Flush() {
	if h := l.resolve().handler; h != nil {
		h.Flush()
	}
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if h := l.resolve().handler; h != nil {
		return h.Close()
	}
	return nil
}
