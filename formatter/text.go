package formatter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/philipp01105/simplelog/core"
)

// TextFormatter renders records in the fixed layout
//
//	time [LEVEL] (thread) target: message [file:line]
//
// omitting disabled or empty parts.
type TextFormatter struct {
	cfg Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{cfg: cfg}
}

// Config returns the configuration the formatter renders with.
func (f *TextFormatter) Config() *Config {
	return &f.cfg
}

// FormatRecord formats a record into buf
func (f *TextFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer, color bool) {
	cfg := &f.cfg
	color = color && cfg.enableColors
	start := buf.Len()
	sep := func() {
		if buf.Len() > start {
			buf.WriteByte(' ')
		}
	}

	if cfg.Has(PartTime) {
		cfg.appendTime(buf, rec.Time)
	}

	if cfg.Has(PartLevel) {
		sep()
		tag := "[" + cfg.levelName(rec.Level) + "]"
		if color {
			writeStyled(buf, style{fg: cfg.LevelColor(rec.Level)}, tag)
		} else {
			buf.WriteString(tag)
		}
	}

	if cfg.Has(PartThread) {
		sep()
		buf.WriteByte('(')
		buf.WriteString(cfg.threadName())
		buf.WriteByte(')')
	}

	if cfg.Has(PartTarget) && rec.Target != "" {
		sep()
		buf.WriteString(pad(rec.Target, cfg.targetPadding))
		buf.WriteByte(':')
	}

	sep()
	cfg.appendMessage(buf, rec.Message, color)

	if cfg.Has(PartLocation) {
		sep()
		buf.WriteByte('[')
		buf.WriteString(location(rec))
		buf.WriteByte(']')
	}

	buf.WriteString(cfg.LineEnding())
}

// levelName renders the level with the configured padding.
func (c *Config) levelName(level core.Level) string {
	name := level.String()
	switch c.levelPadding {
	case LevelPaddingLeft:
		return pad(name, PadLeft(5))
	case LevelPaddingRight:
		return pad(name, PadRight(5))
	default:
		return name
	}
}

// threadName renders the calling goroutine's id. Records are formatted
// synchronously on the goroutine that emitted them.
func (c *Config) threadName() string {
	return pad(strconv.FormatUint(core.GoroutineID(), 10), c.threadPadding)
}

// appendMessage writes the message, expanding markup when enabled.
// A trailing line break in the message is dropped; the terminator is
// written by the layout.
func (c *Config) appendMessage(buf *bytes.Buffer, msg string, color bool) {
	msg = strings.TrimRight(msg, "\r\n")
	if c.markup {
		writeMarkup(buf, msg, color)
		return
	}
	buf.WriteString(msg)
}

func location(rec *core.Record) string {
	if !rec.Caller.Defined {
		return "<unknown>:<unknown>"
	}
	file := rec.Caller.ShortFile
	if file == "" {
		file = strings.ReplaceAll(rec.Caller.File, "\\", "/")
	}
	return file + ":" + strconv.Itoa(rec.Caller.Line)
}

func module(rec *core.Record) string {
	if rec.Caller.Module == "" {
		return "<unknown>"
	}
	return rec.Caller.Module
}

func pad(s string, p Padding) string {
	n := p.Width - len(s)
	if n <= 0 {
		return s
	}
	switch p.Side {
	case SideLeft:
		return strings.Repeat(" ", n) + s
	case SideRight:
		return s + strings.Repeat(" ", n)
	default:
		return s
	}
}
