package formatter

import (
	"bytes"
	"strings"

	"github.com/philipp01105/simplelog/core"
)

// TemplateFormatter renders records through a placeholder template.
//
// A placeholder is "[key]" or "[key:style:style...]" where key is one of
// time, level, thread, target, file, module or message. "[[key]]" wraps the
// value in literal brackets. Styles are bold, italic, dim, underline,
// strikethrough, a color name for the foreground, "bg" plus a color name
// for the background, and nb (level only) to drop the level brackets.
// Placeholders with an unknown key are written verbatim without brackets.
type TemplateFormatter struct {
	cfg    Config
	tokens []token
}

type token struct {
	literal string
	key     string
	raw     string
	wrap    bool
	style   style
	nb      bool
}

// NewTemplateFormatter parses cfg.Template() once.
func NewTemplateFormatter(cfg Config) *TemplateFormatter {
	return &TemplateFormatter{cfg: cfg, tokens: parseTemplate(cfg.template)}
}

// Config returns the configuration the formatter renders with.
func (f *TemplateFormatter) Config() *Config {
	return &f.cfg
}

func parseTemplate(tmpl string) []token {
	var tokens []token
	for len(tmpl) > 0 {
		open := strings.IndexByte(tmpl, '[')
		if open < 0 {
			tokens = append(tokens, token{literal: tmpl})
			break
		}

		wrap := strings.HasPrefix(tmpl[open:], "[[")
		var body string
		var rest string
		if wrap {
			end := strings.Index(tmpl[open+2:], "]]")
			if end < 0 {
				wrap = false
			} else {
				body = tmpl[open+2 : open+2+end]
				rest = tmpl[open+2+end+2:]
			}
		}
		if !wrap {
			end := strings.IndexByte(tmpl[open+1:], ']')
			if end < 0 {
				tokens = append(tokens, token{literal: tmpl})
				break
			}
			body = tmpl[open+1 : open+1+end]
			rest = tmpl[open+1+end+1:]
		}

		if open > 0 {
			tokens = append(tokens, token{literal: tmpl[:open]})
		}
		tokens = append(tokens, parsePlaceholder(body, wrap))
		tmpl = rest
	}
	return tokens
}

func parsePlaceholder(body string, wrap bool) token {
	parts := strings.Split(body, ":")
	t := token{key: parts[0], raw: body, wrap: wrap}
	for _, s := range parts[1:] {
		switch strings.ToLower(s) {
		case "bold":
			t.style.bold = true
		case "italic":
			t.style.italic = true
		case "dim":
			t.style.faint = true
		case "underline":
			t.style.underline = true
		case "strikethrough":
			t.style.crossOut = true
		case "nb", "nobrackets", "no_brackets":
			t.nb = t.key == "level"
		default:
			lower := strings.ToLower(s)
			if strings.HasPrefix(lower, "bg") {
				if c, ok := ParseColor(lower[2:]); ok && t.style.bg == nil {
					t.style.bg = c
				}
			} else if c, ok := ParseColor(lower); ok && t.style.fg == nil {
				t.style.fg = c
			}
		}
	}
	return t
}

// FormatRecord formats a record into buf
func (f *TemplateFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer, color bool) {
	cfg := &f.cfg
	color = color && cfg.enableColors

	for i := range f.tokens {
		t := &f.tokens[i]
		if t.key == "" {
			buf.WriteString(t.literal)
			continue
		}

		if t.wrap {
			buf.WriteByte('[')
		}

		st := t.style
		if t.key == "level" && st.fg == nil {
			st.fg = cfg.LevelColor(rec.Level)
		}
		if !color {
			st = style{}
		}

		switch t.key {
		case "time":
			var tb bytes.Buffer
			cfg.appendTime(&tb, rec.Time)
			writeStyled(buf, st, tb.String())
		case "level":
			name := cfg.levelName(rec.Level)
			if !t.nb {
				name = "[" + name + "]"
			}
			writeStyled(buf, st, name)
		case "thread":
			writeStyled(buf, st, cfg.threadName())
		case "target":
			writeStyled(buf, st, pad(rec.Target, cfg.targetPadding))
		case "file":
			writeStyled(buf, st, location(rec))
		case "module":
			writeStyled(buf, st, module(rec))
		case "message":
			var mb bytes.Buffer
			cfg.appendMessage(&mb, rec.Message, color)
			writeStyled(buf, st, mb.String())
		default:
			buf.WriteString(t.raw)
		}

		if t.wrap {
			buf.WriteByte(']')
		}
	}

	buf.WriteString(cfg.LineEnding())
}
