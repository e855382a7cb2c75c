package logger

import (
	"github.com/philipp01105/simplelog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

// LevelFilter Re-export type for convenience
type LevelFilter = core.LevelFilter

const (
	ErrorLevel = core.ErrorLevel
	WarnLevel  = core.WarnLevel
	InfoLevel  = core.InfoLevel
	DebugLevel = core.DebugLevel
	TraceLevel = core.TraceLevel
)

const (
	Off         = core.Off
	FilterError = core.FilterError
	FilterWarn  = core.FilterWarn
	FilterInfo  = core.FilterInfo
	FilterDebug = core.FilterDebug
	FilterTrace = core.FilterTrace
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

// ParseLevelFilter converts a string such as "info" or "off" to a LevelFilter
func ParseLevelFilter(s string) (LevelFilter, error) {
	return core.ParseLevelFilter(s)
}
