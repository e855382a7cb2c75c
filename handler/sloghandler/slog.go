package sloghandler

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/handler"
)

// LevelTrace is the slog level mapped to core.TraceLevel; anything below
// slog.LevelDebug is treated as trace.
const LevelTrace = slog.LevelDebug - 4

// SlogHandler is an adapter that implements slog.Handler using a Handler.
// Attributes are rendered into the message as key=value text.
type SlogHandler struct {
	handler handler.Handler
	level   core.LevelFilter
	target  string
	attrs   string
	group   string
}

// New creates a slog.Handler adapter wrapping h. Records are passed on
// when both level and h's own filter admit them.
func New(h handler.Handler, level core.LevelFilter) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// WithTarget returns a copy that stamps records with target.
func (s *SlogHandler) WithTarget(target string) *SlogHandler {
	c := *s
	c.target = target
	return &c
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	l := slogLevelToCore(level)
	return s.level.Enabled(l) && s.handler.Level().Enabled(l)
}

// Handle converts r to a core.Record and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Message)
	sb.WriteString(s.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, s.group, a)
		return true
	})

	rec := core.GetRecord()
	if !r.Time.IsZero() {
		rec.Time = r.Time
	}
	rec.Level = slogLevelToCore(r.Level)
	rec.Target = s.target
	rec.Message = sb.String()
	if r.PC != 0 {
		rec.Caller = callerFromPC(r.PC)
		if rec.Target == "" {
			rec.Target = rec.Caller.Module
		}
	}

	s.handler.Log(rec)
	core.PutRecord(rec)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	var sb strings.Builder
	sb.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&sb, s.group, a)
	}
	c := *s
	c.attrs = sb.String()
	return &c
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	c := *s
	if s.group != "" {
		c.group = s.group + "." + name
	} else {
		c.group = name
	}
	return &c
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr writes " key=value", prefixing the key with the group and
// flattening nested groups.
func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(sb, key, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')

	switch a.Value.Kind() {
	case slog.KindString:
		v := a.Value.String()
		if v == "" || strings.ContainsAny(v, " \t\"=") {
			v = strconv.Quote(v)
		}
		sb.WriteString(v)
	case slog.KindTime:
		sb.WriteString(a.Value.Time().Format(time.RFC3339))
	default:
		sb.WriteString(a.Value.String())
	}
}

func callerFromPC(pc uintptr) core.CallerInfo {
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	if f.File == "" {
		return core.CallerInfo{}
	}
	return core.CallerInfo{
		File:      f.File,
		ShortFile: filepath.Base(f.File),
		Line:      f.Line,
		Function:  f.Function,
		Module:    core.PackagePath(f.Function),
		Defined:   true,
	}
}

var _ slog.Handler = (*SlogHandler)(nil)
