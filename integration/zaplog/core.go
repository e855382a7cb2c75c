package zaplog

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/handler"
)

// Core is a zapcore.Core that writes through a handler.Handler. Fields
// are appended to the message as key=value text and the zap logger name
// becomes the record target.
type Core struct {
	handler handler.Handler
	fields  []zapcore.Field
}

// NewCore creates a Core over h.
func NewCore(h handler.Handler) *Core {
	return &Core{handler: h}
}

// Enabled reports whether the handler emits records at lvl.
func (c *Core) Enabled(lvl zapcore.Level) bool {
	return c.handler.Level().Enabled(zapLevelToCore(lvl))
}

// With returns a Core carrying additional fields.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &Core{handler: c.handler, fields: merged}
}

// Check adds c to ce when the entry's level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the entry to a core.Record and logs it.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	rec := core.GetRecord()
	if !ent.Time.IsZero() {
		rec.Time = ent.Time
	}
	rec.Level = zapLevelToCore(ent.Level)
	rec.Message = renderMessage(ent.Message, c.fields, fields)
	rec.Target = ent.LoggerName

	if ent.Caller.Defined {
		rec.Caller = core.CallerInfo{
			File:      ent.Caller.File,
			ShortFile: shortFile(ent.Caller.File),
			Line:      ent.Caller.Line,
			Function:  ent.Caller.Function,
			Module:    core.PackagePath(ent.Caller.Function),
			Defined:   true,
		}
		if rec.Target == "" {
			rec.Target = rec.Caller.Module
		}
	}

	c.handler.Log(rec)
	core.PutRecord(rec)
	return nil
}

// Sync flushes the handler
func (c *Core) Sync() error {
	c.handler.Flush()
	return nil
}

// zapLevelToCore converts a zapcore.Level to a core.Level. DPanic, Panic
// and Fatal are logged as errors; zap still panics or exits afterwards.
func zapLevelToCore(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl == zapcore.WarnLevel:
		return core.WarnLevel
	case lvl == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// renderMessage appends every field as " key=value" in order.
func renderMessage(msg string, groups ...[]zapcore.Field) string {
	enc := zapcore.NewMapObjectEncoder()
	var keys []string
	for _, fields := range groups {
		for _, f := range fields {
			f.AddTo(enc)
			if f.Type != zapcore.SkipType {
				keys = append(keys, f.Key)
			}
		}
	}
	if len(keys) == 0 {
		return msg
	}

	var sb strings.Builder
	sb.WriteString(msg)
	for _, k := range keys {
		v, ok := enc.Fields[k]
		if !ok {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(formatValue(v))
	}
	return sb.String()
}

func formatValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return fmt.Sprint(v)
	}
	if s == "" || strings.ContainsAny(s, " \t\"=") {
		return strconv.Quote(s)
	}
	return s
}

func shortFile(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

var _ zapcore.Core = (*Core)(nil)
