package formatter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Re-exported ANSI colors for SetLevelColor.
var (
	Black   termenv.Color = termenv.ANSIBlack
	Red     termenv.Color = termenv.ANSIRed
	Green   termenv.Color = termenv.ANSIGreen
	Yellow  termenv.Color = termenv.ANSIYellow
	Blue    termenv.Color = termenv.ANSIBlue
	Magenta termenv.Color = termenv.ANSIMagenta
	Cyan    termenv.Color = termenv.ANSICyan
	White   termenv.Color = termenv.ANSIWhite
)

var namedColors = map[string]termenv.ANSIColor{
	"black":   termenv.ANSIBlack,
	"red":     termenv.ANSIRed,
	"green":   termenv.ANSIGreen,
	"yellow":  termenv.ANSIYellow,
	"blue":    termenv.ANSIBlue,
	"magenta": termenv.ANSIMagenta,
	"cyan":    termenv.ANSICyan,
	"white":   termenv.ANSIWhite,
}

// ParseColor resolves a color name ("red", "bright-red", "bright red")
// or an ANSI index ("0".."15") to a color.
func ParseColor(name string) (termenv.Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 || n > 15 {
			return nil, false
		}
		return termenv.ANSIColor(n), true
	}

	bright := false
	for _, p := range [...]string{"bright-", "bright ", "bright_"} {
		if strings.HasPrefix(name, p) {
			bright = true
			name = name[len(p):]
			break
		}
	}

	c, ok := namedColors[name]
	if !ok {
		return nil, false
	}
	if bright {
		c += 8
	}
	return c, true
}

// style accumulates SGR attributes for one styled span.
type style struct {
	fg, bg termenv.Color
	bold, italic, faint, underline, crossOut bool
}

func (s style) empty() bool {
	return s == style{}
}

func (s style) render(text string) string {
	st := termenv.String(text)
	if s.fg != nil {
		st = st.Foreground(s.fg)
	}
	if s.bg != nil {
		st = st.Background(s.bg)
	}
	if s.bold {
		st = st.Bold()
	}
	if s.italic {
		st = st.Italic()
	}
	if s.faint {
		st = st.Faint()
	}
	if s.underline {
		st = st.Underline()
	}
	if s.crossOut {
		st = st.CrossOut()
	}
	return st.String()
}

// writeStyled writes text wrapped in the style's escape sequences.
func writeStyled(buf *bytes.Buffer, s style, text string) {
	if s.empty() {
		buf.WriteString(text)
		return
	}
	buf.WriteString(s.render(text))
}

// sgr writes a raw Select Graphic Rendition sequence.
func sgr(buf *bytes.Buffer, seq string) {
	buf.WriteString(termenv.CSI)
	buf.WriteString(seq)
	buf.WriteByte('m')
}
