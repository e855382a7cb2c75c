package consolehandler

import (
	"io"
	"os"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
	"github.com/philipp01105/simplelog/handler"
)

// TerminalMode selects which stream a TermLogger writes to.
type TerminalMode uint8

const (
	// Mixed writes Error and Warn to stderr and the rest to stdout
	Mixed TerminalMode = iota
	// Stdout writes everything to stdout
	Stdout
	// Stderr writes everything to stderr
	Stderr
)

// String returns the string representation of the mode
func (m TerminalMode) String() string {
	switch m {
	case Mixed:
		return "mixed"
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// ColorChoice controls whether a TermLogger emits ANSI styling.
type ColorChoice uint8

const (
	// ColorAuto colors a stream only when it is an interactive terminal,
	// NO_COLOR is unset and TERM is not "dumb"
	ColorAuto ColorChoice = iota
	// ColorAlways colors unconditionally
	ColorAlways
	// ColorNever never colors
	ColorNever
)

// String returns the string representation of the choice
func (c ColorChoice) String() string {
	switch c {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// TermLogger writes to the terminal streams with optional colors. Color
// is negotiated per stream when the logger is built; a stream whose
// terminal capabilities cannot be detected is written as plain text.
type TermLogger struct {
	consoleBase
	mode TerminalMode
}

// NewTermLogger creates a TermLogger emitting records up to level.
func NewTermLogger(level core.LevelFilter, cfg formatter.Config, mode TerminalMode, choice ColorChoice, opts ...Option) *TermLogger {
	o := applyOptions(opts)
	f := formatter.New(cfg)
	stats := handler.NewStats()

	h := &TermLogger{mode: mode}
	h.level = level
	h.cfg = cfg
	h.stats = stats

	stream := func(w io.Writer) *handler.Sink {
		return handler.NewSink(w, f, useColor(w, choice), false, stats)
	}

	switch mode {
	case Stdout:
		h.outSink = stream(o.stdout)
		h.errSink = h.outSink
	case Stderr:
		h.outSink = stream(o.stderr)
		h.errSink = h.outSink
	default:
		h.outSink = stream(o.stdout)
		h.errSink = stream(o.stderr)
	}
	return h
}

// Mode returns the terminal mode
func (h *TermLogger) Mode() TerminalMode {
	return h.mode
}

// Colored reports whether the output and error streams use colors.
func (h *TermLogger) Colored() (out, err bool) {
	return h.outSink.Color(), h.errSink.Color()
}

// useColor negotiates color for one stream.
func useColor(w io.Writer, choice ColorChoice) bool {
	switch choice {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal(w)
}

var _ handler.Handler = (*TermLogger)(nil)
