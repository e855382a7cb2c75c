package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity of a log record. Lower values are more
// severe: ErrorLevel < WarnLevel < InfoLevel < DebugLevel < TraceLevel.
type Level uint8

const (
	// ErrorLevel for errors that need attention
	ErrorLevel Level = iota + 1
	// WarnLevel for hazardous situations
	WarnLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for debugging information
	DebugLevel
	// TraceLevel for very verbose, low priority information
	TraceLevel
)

// Levels lists every level from most to least severe.
var Levels = [...]Level{ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Filter returns the LevelFilter that admits exactly l and everything more severe.
func (l Level) Filter() LevelFilter {
	return LevelFilter(l)
}

// LevelFilter is the least severe Level a logger accepts, or Off.
type LevelFilter uint8

const (
	// Off disables all records
	Off LevelFilter = iota
	FilterError
	FilterWarn
	FilterInfo
	FilterDebug
	FilterTrace
)

// String returns the string representation of the filter
func (f LevelFilter) String() string {
	if f == Off {
		return "OFF"
	}
	return Level(f).String()
}

// Enabled reports whether a record at level passes the filter.
func (f LevelFilter) Enabled(level Level) bool {
	return f != Off && level <= Level(f)
}

// Enabled reports whether a record at level passes filter.
func Enabled(level Level, filter LevelFilter) bool {
	return filter.Enabled(level)
}

// MaxFilter returns the least restrictive of the given filters (Off if none).
func MaxFilter(filters ...LevelFilter) LevelFilter {
	max := Off
	for _, f := range filters {
		if f > max {
			max = f
		}
	}
	return max
}

// ErrUnknownLevel is returned when a level name cannot be parsed.
var ErrUnknownLevel = errors.New("unknown level")

// ParseLevel converts a case-insensitive name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "TRACE":
		return TraceLevel, nil
	default:
		return 0, errors.Wrapf(ErrUnknownLevel, "%q", s)
	}
}

// ParseLevelFilter converts a case-insensitive name to a LevelFilter.
// "off" maps to Off.
func ParseLevelFilter(s string) (LevelFilter, error) {
	if strings.EqualFold(strings.TrimSpace(s), "off") {
		return Off, nil
	}
	l, err := ParseLevel(s)
	if err != nil {
		return Off, err
	}
	return l.Filter(), nil
}
