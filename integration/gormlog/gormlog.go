package gormlog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/philipp01105/simplelog/logger"
)

// DefaultSlowThreshold is the query duration above which a query is
// logged as a warning.
const DefaultSlowThreshold = 200 * time.Millisecond

// Logger is a gorm logger.Interface that writes through a logger.Logger.
// Regular queries are logged at Debug, slow queries at Warn and failed
// queries at Error.
type Logger struct {
	log           *logger.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// New creates a gorm logger writing through l. Records carry the
// location of the code that called into the gorm logger, and are
// targeted at its package unless l has a fixed target. Use
// l.Named("gorm") for a fixed target.
func New(l *logger.Logger) *Logger {
	return &Logger{
		log:           l.AddCallerSkip(1),
		level:         gormlogger.Info,
		slowThreshold: DefaultSlowThreshold,
	}
}

// ParseLogMode maps "silent", "error", "warn" and "info" to a gorm level.
// Unknown names map to Info.
func ParseLogMode(s string) gormlogger.LogLevel {
	switch strings.ToLower(s) {
	case "silent", "off":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn", "warning":
		return gormlogger.Warn
	default:
		return gormlogger.Info
	}
}

// LogMode sets the log level for the logger
func (l *Logger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *l
	newLogger.level = level
	return &newLogger
}

// WithSlowThreshold returns a new logger with updated slow threshold
func (l *Logger) WithSlowThreshold(threshold time.Duration) *Logger {
	newLogger := *l
	newLogger.slowThreshold = threshold
	return &newLogger
}

// Info logs info messages
func (l *Logger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.Infof(msg, data...)
	}
}

// Warn logs warn messages
func (l *Logger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.Warnf(msg, data...)
	}
}

// Error logs error messages
func (l *Logger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.log.Errorf(msg, data...)
	}
}

// Trace logs SQL operations
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.log.Errorf("sql error: %v [%s] %s", err, elapsed, describe(sql, rows))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.log.Warnf("slow sql >= %s [%s] %s", l.slowThreshold, elapsed, describe(sql, rows))
	case l.level >= gormlogger.Info && l.log.Enabled(logger.DebugLevel):
		sql, rows := fc()
		l.log.Debugf("sql [%s] %s", elapsed, describe(sql, rows))
	}
}

// describe renders the statement and affected rows (-1 when unknown).
func describe(sql string, rows int64) string {
	if rows < 0 {
		return fmt.Sprintf("rows=- %s", sql)
	}
	return fmt.Sprintf("rows=%d %s", rows, sql)
}

var _ gormlogger.Interface = (*Logger)(nil)
